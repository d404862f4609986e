package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a sample config file",
	Long:  `Creates a sample .coldtco.yaml with the default simulation parameters and an example custom provider.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := ".coldtco.yaml"

	wrote, err := writeIfNotExists(configPath, sampleConfig, initFlags.force)
	if err != nil {
		return err
	}

	if wrote {
		fmt.Printf("Created %s\n", configPath)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit .coldtco.yaml to set volumes, duration and providers")
		fmt.Println("  2. Run: coldtco providers")
		fmt.Println("  3. Run: coldtco estimate")
	}
	return nil
}

func writeIfNotExists(path, content string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", path)
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

const sampleConfig = `# coldtco configuration
# See: https://github.com/ppiankov/coldtco

# Initial volume of data to archive (GB)
initial_gb: 500

# Volume of data archived every month (GB)
monthly_ingest_gb: 50

# Simulation length (months)
months: 36

# Providers to compare (default: all)
# providers:
#   - ovhcloud
#   - scaleway

# Currency label appended to amounts
currency: "€HT"

# Output format: text or json
format: text

# Print a month-by-month breakdown
breakdown: false

# Additional providers. Prices are per GB (at_rest_cost per GB-hour).
# custom_providers:
#   mycloud:
#     name: Deep Archive
#     provider_name: My Cloud
#     description: Single region
#     at_rest_cost: 0.0000025
#     ingress_cost: 0.005
#     egress_cost: 0.02
#     free_tier: 0
`
