package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/nitrix/internal/config"
)

var (
	cfgFile string
	Version = "0.4.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════════╗",
		"║   ███╗   ██╗██╗████████╗██████╗ ██╗██╗  ██╗        ║",
		"║   ████╗  ██║██║╚══██╔══╝██╔══██╗██║╚██╗██╔╝        ║",
		"║   ██╔██╗ ██║██║   ██║   ██████╔╝██║ ╚███╔╝         ║",
		"║   ██║╚██╗██║██║   ██║   ██╔══██╗██║ ██╔██╗         ║",
		"║   ██║ ╚████║██║   ██║   ██║  ██║██║██╔╝ ██╗        ║",
		"║   ╚═╝  ╚═══╝╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝╚═╝  ╚═╝        ║",
		"║                                                    ║",
		"║      Tables in, HTML • React • React Native out    ║",
		"╚════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                 ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "nitrix",
	Short: "Generate table views and starter projects from database data",
	Long: `
Nitrix reads the tables of a database (or a YAML/JSON schema file) and turns
them into ready-to-use table views with the data baked in.

Output formats:
- html          (a single HTML document with Tailwind classes)
- react         (TSX components, or a Vite + Tailwind project)
- react-native  (Expo components, or an Expo project)

Themes: light, dark, material, minimal

Sources:
- SQLite files
- PostgreSQL
- MySQL
- YAML / JSON schema files`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("Nitrix CLI version %s\n", Version)
			return
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().String("source", "", "SQLite file or schema file to read (overrides source.path)")
	rootCmd.PersistentFlags().String("provider", "", "source provider: sqlite, postgres, mysql, file")
	rootCmd.PersistentFlags().String("format", "", "output format: html, react, react-native")
	rootCmd.PersistentFlags().String("theme", "", "theme: light, dark, material, minimal")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Overwrite existing files")

	viper.BindPFlag("source.path", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("source.provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(exportCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
	}
	godotenv.Load(".env.local")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("nitrix.config")
	}

	viper.SetEnvPrefix("NITRIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.ReadInConfig()
}
