package main

import (
	"encoding/json"
	"fmt"
	"time"

	"arbotique/internal/models"
	"arbotique/internal/render"
	"arbotique/internal/service"
	"arbotique/pkg/config"
	"arbotique/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recAPIURL     string
	recName       string
	recEmail      string
	recAge        int
	recGender     string
	recColors     []string
	recStyles     []string
	recOccasions  []string
	recBudget     int
	recBodyType   string
	recSkinTone   string
	recJSON       bool
	recNoImgCheck bool
	recVerbose    bool
	recImgTimeout time.Duration
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print outfit recommendations for a profile",
	Long:  "Send one recommendation request and print the outfits. Built-in outfits are printed when the recommender cannot be reached.",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recAPIURL, "api-url", "", "Recommender base URL (overrides RECOMMENDER_API_URL)")
	recommendCmd.Flags().StringVar(&recName, "name", "", "User name")
	recommendCmd.Flags().StringVar(&recEmail, "email", "", "User email")
	recommendCmd.Flags().IntVar(&recAge, "age", service.DefaultAge, "User age")
	recommendCmd.Flags().StringVar(&recGender, "gender", "", "Gender: male, female or other")
	recommendCmd.Flags().StringSliceVar(&recColors, "colors", nil, "Preferred colours, first one is sent")
	recommendCmd.Flags().StringSliceVar(&recStyles, "styles", nil, "Preferred styles, first one is sent")
	recommendCmd.Flags().StringSliceVar(&recOccasions, "occasions", nil, "Occasions")
	recommendCmd.Flags().IntVar(&recBudget, "budget", models.DefaultBudgetMax, "Maximum budget")
	recommendCmd.Flags().StringVar(&recBodyType, "body-type", "", "Body type")
	recommendCmd.Flags().StringVar(&recSkinTone, "skin-tone", "", "Skin tone")
	recommendCmd.Flags().BoolVar(&recJSON, "json", false, "Print normalized outfits as JSON")
	recommendCmd.Flags().BoolVar(&recNoImgCheck, "no-image-check", false, "Skip checking item image URLs")
	recommendCmd.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Log at debug level")
	recommendCmd.Flags().DurationVar(&recImgTimeout, "image-timeout", 5*time.Second, "Timeout for each image check")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if recAPIURL != "" {
		cfg.Recommender.APIBase = recAPIURL
	}

	level := "warn"
	if recVerbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Console: true})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := service.NewRecommenderClient(&cfg.Recommender, log)
	if err != nil {
		return fmt.Errorf("failed to initialize recommender client: %w", err)
	}

	profile := models.NewUserProfile()
	profile.Name = recName
	profile.Email = recEmail
	profile.Age = recAge
	profile.Gender = models.Gender(recGender)

	quiz := models.NewStyleQuiz()
	for _, c := range recColors {
		quiz.Colors = models.Toggle(quiz.Colors, c)
	}
	for _, s := range recStyles {
		quiz.Styles = models.Toggle(quiz.Styles, s)
	}
	for _, o := range recOccasions {
		quiz.Occasions = models.Toggle(quiz.Occasions, o)
	}
	quiz.SetBudgetMax(recBudget)
	quiz.BodyType = recBodyType
	quiz.SkinTone = recSkinTone

	ctx := cmd.Context()
	result := service.NewRecommendationService(client, log).Recommend(ctx, profile, quiz)
	log.Debug("Recommendation round finished",
		zap.String("source", string(result.Source)),
		zap.Int("outfits", len(result.Outfits)),
	)

	outfits := service.Normalize(result.Outfits)
	out := cmd.OutOrStdout()

	var checker render.ImageChecker = render.NewHTTPChecker(recImgTimeout)
	if recNoImgCheck {
		checker = render.NoopChecker{}
	}
	renderer := render.NewRenderer(checker, log)

	if recJSON {
		renderer.ResolveImages(ctx, outfits)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(outfits)
	}
	return renderer.Render(ctx, out, outfits)
}
