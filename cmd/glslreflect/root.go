package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0-dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glslreflect",
		Short: "Extract the declared interface of GLSL ES 3.00 shaders",
		Long: `glslreflect reads the in/out/uniform variables, uniform block
members and struct definitions of GLSL ES 3.00 (WebGL2) shaders and
emits them as structured records, for generating host-side bindings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newExtractCmd(), newWatchCmd())
	return cmd
}
