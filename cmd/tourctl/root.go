package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smartcity/tourdifficulty/internal/domain"
	"github.com/smartcity/tourdifficulty/internal/repository/memory"
	"github.com/smartcity/tourdifficulty/internal/repository/postgres"
	"github.com/smartcity/tourdifficulty/internal/service"
)

// newRootCmd wires the tourctl command tree. Flags may also be supplied as
// TOURCTL_* environment variables, e.g. TOURCTL_AREA.
func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("tourctl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "tourctl",
		Short:         "Query tourist area visit difficulty from the command line",
		Long:          `tourctl runs the visit difficulty pipeline locally: it lists the area catalog and reports current and 30 minute difficulty for an area at any instant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("database-url", "", "load the catalog from PostgreSQL instead of the built-in areas")
	root.PersistentFlags().Duration("db-timeout", 10*time.Second, "database connect timeout")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newAreasCmd(v, out), newStatusCmd(v, out))
	return root
}

func newAreasCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "areas",
		Short: "List catalog areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog(cmd.Context(), v)
			if err != nil {
				return err
			}
			svc := service.NewStatusService(catalog, service.NewTrafficService())
			return writeJSON(out, svc.Areas(v.GetString("search")))
		},
	}
	cmd.Flags().String("search", "", "case-insensitive filter on name, Korean name, region or category")
	_ = v.BindPFlag("search", cmd.Flags().Lookup("search"))
	return cmd
}

func newStatusCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report current and 30 minute difficulty for an area",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if raw := v.GetString("at"); raw != "" {
				parsed, err := time.Parse(time.RFC3339, raw)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", raw, err)
				}
				at = parsed
			}

			catalog, err := openCatalog(cmd.Context(), v)
			if err != nil {
				return err
			}

			var opts []service.Option
			if v.GetBool("random") {
				opts = append(opts, service.WithNoise(service.EntropyNoise))
			}
			svc := service.NewStatusService(catalog, service.NewTrafficService(), opts...)

			status, err := svc.StatusAt(cmd.Context(), v.GetString("area"), at)
			if errors.Is(err, domain.ErrAreaNotFound) {
				_ = writeJSON(out, domain.UnknownAreaResponse{
					Error:          fmt.Sprintf("unknown area %q", v.GetString("area")),
					AvailableAreas: svc.AreaIDs(),
				})
				return err
			}
			if err != nil {
				return err
			}
			return writeJSON(out, status)
		},
	}
	cmd.Flags().String("area", domain.DefaultAreaID, "area id")
	cmd.Flags().String("at", "", "instant to assess, RFC 3339 (default now)")
	cmd.Flags().Bool("random", false, "use unseeded jitter instead of the per-5-minute seed")
	for _, name := range []string{"area", "at", "random"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func openCatalog(ctx context.Context, v *viper.Viper) (*memory.Catalog, error) {
	url := v.GetString("database-url")
	if url == "" {
		return memory.NewDefaultCatalog(), nil
	}

	pool, err := postgres.Connect(ctx, url, v.GetDuration("db-timeout"))
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return memory.LoadCatalog(ctx, postgres.NewAreaRepository(pool))
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
