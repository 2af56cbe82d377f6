package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	green := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║      ██████╗ ███████╗ ██████╗                    ║",
		"║     ██╔════╝ ██╔════╝██╔═══██╗                   ║",
		"║     ██║  ███╗█████╗  ██║   ██║                   ║",
		"║     ██║   ██║██╔══╝  ██║   ██║                   ║",
		"║     ╚██████╔╝███████╗╚██████╔╝                   ║",
		"║      ╚═════╝ ╚══════╝ ╚═════╝  profile           ║",
		"║                                                  ║",
		"║   🌍 Synthetic German profiles with geo data     ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		green.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "geoprofile",
	Short: "Generate fictional German person/purchase records with geographic data",
	Long: `
geoprofile synthesizes internally consistent fictional profiles: identity,
address, coordinates and a purchase, all tied to plausible German regional
data (state → ZIP range, city → coordinates, gender → name pool).

Output formats:
- CSV (default)
- Excel (.xlsx)
- JSON (full precision, UTF-8)
- SQLite (.db)
- Interactive Leaflet map (.html)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("geoprofile version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./geoprofile.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("geoprofile.config")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
