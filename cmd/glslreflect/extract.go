package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/glslreflect/glsl300"
)

func newExtractCmd() *cobra.Command {
	var jsonOutput bool
	var pretty bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "extract <shader> [shader...]",
		Short: "Extract shader interfaces and print them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var f *os.File
			if outPath != "" {
				var err error
				f, err = os.Create(outPath)
				if err != nil {
					return err
				}
				out = f
			}
			err := runExtract(out, args, jsonOutput, pretty)
			if f != nil {
				// A failed flush on close is still a failed write.
				if cerr := f.Close(); err == nil {
					err = cerr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", true, "emit JSON (false for a plain listing)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to a file instead of stdout")
	return cmd
}

func runExtract(out io.Writer, paths []string, jsonOutput, pretty bool) error {
	byFile := make(map[string][]glsl300.Declaration, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		decls, err := glsl300.Parse(string(source))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		byFile[path] = decls
	}

	if !jsonOutput {
		for _, path := range paths {
			fmt.Fprintf(out, "%s:\n", path)
			renderText(out, byFile[path], "  ")
		}
		return nil
	}

	// A single shader emits its declaration list directly; multiple
	// shaders emit an object keyed by path.
	var payload interface{} = byFile
	if len(paths) == 1 {
		payload = byFile[paths[0]]
	}
	return emitJSON(out, payload, pretty)
}

func emitJSON(out io.Writer, payload interface{}, pretty bool) error {
	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}

func renderText(out io.Writer, decls []glsl300.Declaration, indent string) {
	for _, d := range decls {
		fmt.Fprintf(out, "%s%s %s %s", indent, d.Qualifier, typeLabel(d), d.Name)
		if d.Amount != 1 {
			fmt.Fprintf(out, "[%d]", d.Amount)
		}
		if d.Layout != "" {
			fmt.Fprintf(out, " layout(%s)", d.Layout)
		}
		fmt.Fprintln(out)
		if d.Type == glsl300.TypeBlock {
			renderText(out, d.Block, indent+"  ")
		}
	}
}

func typeLabel(d glsl300.Declaration) string {
	if d.Type == glsl300.TypeStruct {
		return d.StructName
	}
	return d.Type
}
