package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dipakkr/postzaper"
	"github.com/dipakkr/postzaper/sitemap"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// .env.local overrides .env; neither is required.
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "postzaper",
		Short:         "PostZaper marketing site",
		Long:          "Serve the PostZaper marketing site and build its sitemap, tool store and social preview image.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), sitemapCmd(), seedCmd(), ogImageCmd(), versionCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := postzaper.New(postzaper.ConfigFromEnv())
			defer app.Close()

			go func() {
				<-cmd.Context().Done()
				_ = app.Echo.Close()
			}()
			return app.Start()
		},
	}
}

func sitemapCmd() *cobra.Command {
	var catalog, output string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap.xml from the tool catalog",
		Long: `Scan the tool catalog for slugs and write sitemap.xml with the static
pages followed by one entry per tool. A .yaml catalog is read as records, a
.db catalog as a tool store, anything else is scanned for slug: "..." fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := postzaper.ConfigFromEnv()
			if catalog != "" {
				cfg.CatalogPath = catalog
			}
			if output != "" {
				cfg.SitemapPath = output
			}
			_, err := postzaper.GenerateSitemap(cmd.Context(), cfg, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVar(&catalog, "catalog", "", "tool catalog to scan (default $TOOL_CATALOG or data/tools.ts)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "sitemap file to write (default $SITEMAP_PATH or public/sitemap.xml)")
	return cmd
}

func seedCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the tool store with a YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := postzaper.ConfigFromEnv()
			if from == "" && sitemap.IsYAML(cfg.CatalogPath) {
				from = cfg.CatalogPath
			}

			var (
				tools []postzaper.Tool
				err   error
			)
			if from != "" {
				tools, err = postzaper.LoadToolsFile(from)
			} else {
				tools, err = postzaper.SeedTools()
			}
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			store, err := postzaper.NewStore(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.ReplaceAll(tools); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d tools into %s\n", len(tools), cfg.DatabasePath)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "YAML catalog to load (default embedded catalog)")
	return cmd
}

func ogImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "og-image <source-image>",
		Short: "Render the 1200x630 social preview image into the static dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := postzaper.ConfigFromEnv()
			path, err := postzaper.WriteOGImage(args[0], cfg.StaticDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the postzaper version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "postzaper %s\n", version)
		},
	}
}
