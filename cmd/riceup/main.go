package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velvetfox/riceup/internal/log"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "riceup",
	Short: "Provision an i3 + LightDM gruvbox desktop",
	Long:  "riceup installs the i3 window manager stack, builds the web-greeter login screen from source, and deploys the gruvbox configuration set for the invoking user.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the riceup version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

func init() {
	installCmd.Flags().String("theme", "gruvbox", "greeter theme to install and select")
	installCmd.Flags().String("greeter-repo", "", "web-greeter source repository (defaults to upstream)")
	installCmd.Flags().String("greeter-ref", "", "branch to build instead of the default branch")
	installCmd.Flags().BoolP("interactive", "i", false, "show progress in a full-screen UI")
	installCmd.Flags().Bool("verbose", false, "enable debug logging")

	viper.SetEnvPrefix("RICEUP")
	viper.AutomaticEnv()
	for _, name := range []string{"theme", "greeter-repo", "greeter-ref", "interactive", "verbose"} {
		if err := viper.BindPFlag(name, installCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(versionCmd, installCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
