package main

import (
	"fmt"
	"os"

	"github.com/maasbench/secretgen/internal/secrets"
	"github.com/spf13/cobra"
)

var (
	output    string
	namespace string
)

var rootCmd = &cobra.Command{
	Use:   "secretgen",
	Short: "Generate benchmark user Secrets for the LLM gateway",
	Long: `Generate a static Kubernetes manifest containing 500 user API key
Secrets (250 free tier, 250 premium tier) for load testing the gateway's
Kuadrant-based authentication layer.

Each Secret carries the kuadrant.io/auth-secret label and a
kuadrant.io/groups annotation so the gateway's AuthPolicy picks it up.
API keys follow the convention api_key = "<user_id>_key", which the
maas-k6.js load script relies on.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", secrets.DefaultOutputFile, "Path of the manifest file to write")
	rootCmd.Flags().StringVarP(&namespace, "namespace", "n", secrets.DefaultNamespace, "Namespace for the generated Secrets")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	tiers := secrets.DefaultTiers()

	documents, err := secrets.Generate(tiers, namespace)
	if err != nil {
		return fmt.Errorf("failed to generate secrets: %w", err)
	}

	if err := secrets.WriteManifest(documents, output); err != nil {
		return err
	}

	fmt.Printf("Generated %d user secrets in %s\n", len(documents), output)
	for _, tier := range tiers {
		fmt.Printf("- %d %s users: %suser1-%d\n", tier.Count, tier.Name, tier.Name, tier.Count)
	}

	return nil
}
