package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/terminarz/terminarz/internal/adapters/providers/geolocation"
	"github.com/terminarz/terminarz/internal/application/services"
	"github.com/terminarz/terminarz/internal/domain/entities"
	"github.com/terminarz/terminarz/internal/infrastructure/clients/nfz"
	"github.com/terminarz/terminarz/internal/infrastructure/observability"
	"github.com/terminarz/terminarz/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.Service.Name, cfg.Service.Env)

	client := nfz.NewClient(cfg.Registry.BaseURL,
		nfz.WithAPIVersion(cfg.Registry.APIVersion),
		nfz.WithTimeout(cfg.Registry.Timeout),
	)
	session := services.NewSearchService(client, geolocation.FromConfig(cfg.Geolocation))

	root := &cobra.Command{
		Use:   "terminarz",
		Short: "Find public healthcare queues and their waiting times",
	}
	root.AddCommand(
		newSearchCmd(session),
		newAnalyzeCmd(session),
		newBenefitsCmd(client),
		newVersionCmd(client),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newSearchCmd(session *services.SearchService) *cobra.Command {
	var (
		province string
		benefit  string
		locality string
		urgent   bool
		children bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search queues by province and benefit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session.ResolveOrigin(ctx)

			code := entities.ResolveProvince(province)
			if code == "" {
				code = province
			}

			caseType := entities.CaseStable
			if urgent {
				caseType = entities.CaseUrgent
			}

			result, err := session.Search(ctx, entities.SearchCriteria{
				Case:                caseType,
				Province:            code,
				Benefit:             entities.ResolveBenefit(benefit),
				Locality:            locality,
				BenefitsForChildren: children,
				Limit:               limit,
			})
			if err != nil {
				return err
			}

			fmt.Println(result.Summary)
			fmt.Println()
			for i, q := range result.Records {
				fmt.Printf("%d. %s in %s\n", i+1, q.Attributes.Provider, q.Attributes.Locality)
				fmt.Printf("   Address: %s\n", q.Attributes.Address)
				fmt.Printf("   Phone: %s\n", q.Attributes.Phone)
				if q.HasDate() {
					fmt.Printf("   Available date: %s\n", q.Attributes.Dates.Date)
				}
				if q.Distance != nil {
					fmt.Printf("   Distance: %.1f km\n", *q.Distance)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&province, "province", "p", "", "province code (01-16) or voivodeship name")
	cmd.Flags().StringVarP(&benefit, "benefit", "b", "", "benefit name, friendly or registry form")
	cmd.Flags().StringVarP(&locality, "locality", "l", "", "locality filter")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "urgent case type")
	cmd.Flags().BoolVar(&children, "children", false, "pediatric queues only")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")
	_ = cmd.MarkFlagRequired("province")
	return cmd
}

func newAnalyzeCmd(session *services.SearchService) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [referral text]",
		Short: "Extract a benefit guess and keywords from referral text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if utf8.RuneCountInString(text) < services.MinAnalyzeLength {
				fmt.Println("Text too short to analyze.")
				return nil
			}
			interp := session.Analyze(text)
			fmt.Printf("Benefit guess: %s\n", interp.BenefitGuess)
			if interp.BenefitGuess != "" {
				fmt.Printf("Resolved benefit: %s\n", entities.ResolveBenefit(interp.BenefitGuess))
			}
			fmt.Printf("Keywords: %v\n", interp.Keywords)
			return nil
		},
	}
}

func newBenefitsCmd(client nfz.Client) *cobra.Command {
	var province string

	cmd := &cobra.Command{
		Use:   "benefits [term]",
		Short: "Search registry benefit categories by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ValidateSearchTerm(args[0]); err != nil {
				return err
			}
			names, err := client.SearchBenefits(cmd.Context(), args[0], nfz.SearchOptions{
				Province: province,
				Limit:    25,
			})
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&province, "province", "p", "", "province code filter")
	return cmd
}

func newVersionCmd(client nfz.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the registry protocol version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := client.GetVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("registry api %d.%d.%d\n", v.Major, v.Minor, v.Patch)
			return nil
		},
	}
}
