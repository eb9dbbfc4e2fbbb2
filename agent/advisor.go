package agent

import (
	"context"
	"fmt"

	"github.com/etnz/divproj"
	"github.com/etnz/divproj/docs"
	"github.com/etnz/divproj/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAdvisor creates the projection advisor expert. It is grounded in the
// embedded documentation and can run real projections through its tools,
// so its figures come from the engine instead of model arithmetic.
func NewAdvisor() *Expert {
	lib := []Function{RunProjection}

	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an advisor helping the user reason about dividend
			investment projections. You NEVER do compounding arithmetic
			yourself: whenever a figure is needed, call the run_projection
			tool with the user's assumptions and read the figures from its
			report. Explain the assumptions behind every number, and remind
			the user that projections are deterministic what-if scenarios,
			not forecasts.

			Here is how the projection model works:

			` + must(docs.Topic("model")) + `

			` + must(docs.Topic("scenarios")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// RunProjection exposes the projection engine as a tool.
var RunProjection = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "run_projection",
		Description: `run_projection runs a three-scenario dividend projection
		and returns a markdown report: final value per scenario, the breakdown
		of the Baseline final value, and the yearly dividend income.
		Omitted parameters use the application defaults.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"share_price":               {Type: genai.TypeNumber, Description: "Share price, must be positive."},
				"num_shares":                {Type: genai.TypeNumber, Description: "Number of shares held, may be fractional."},
				"holding_period_years":      {Type: genai.TypeInteger, Description: "Investment period in years, 1 to 30."},
				"annual_dividend_yield_pct": {Type: genai.TypeNumber, Description: "Annual dividend yield in percent, 0 to 100."},
				"stock_appreciation_pct":    {Type: genai.TypeNumber, Description: "Annual stock appreciation rate in percent, 0 to 100."},
				"dividend_growth_pct":       {Type: genai.TypeNumber, Description: "Annual dividend growth rate in percent, 0 to 100."},
				"annual_contribution":       {Type: genai.TypeNumber, Description: "Additional contribution per year."},
				"contribution_frequency":    {Type: genai.TypeString, Description: "monthly, quarterly or annually."},
				"dividend_frequency":        {Type: genai.TypeString, Description: "monthly, quarterly or annually."},
				"reinvest_dividends":        {Type: genai.TypeBoolean, Description: "Whether dividends buy more shares."},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted projection report.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fail := func(err error) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "run_projection",
				Response: map[string]any{
					"error": err.Error(),
				},
			}
		}

		a, err := parseAssumptions(args)
		if err != nil {
			return fail(err)
		}
		report, err := projectMarkdown(a)
		if err != nil {
			return fail(err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "run_projection",
			Response: map[string]any{
				"output": report,
			},
		}
	},
}

// projectMarkdown runs the engine and renders the full markdown report.
func projectMarkdown(a divproj.Assumptions) (string, error) {
	p, err := divproj.Project(a)
	if err != nil {
		return "", err
	}
	const currency = "USD"
	b := divproj.NewBreakdownReport(p, currency)
	d := divproj.NewDividendsReport(p, currency)
	return renderer.ProjectionMarkdown(p, b) + "\n" + renderer.DividendsMarkdown(d), nil
}

// parseAssumptions merges tool arguments over the default assumptions.
// genai delivers JSON numbers as float64 and everything else as its JSON
// type, so each field is type-checked before assignment.
func parseAssumptions(args map[string]any) (divproj.Assumptions, error) {
	a := divproj.DefaultAssumptions()

	num := func(key string, dst *float64) error {
		v, ok := args[key]
		if !ok {
			return nil
		}
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("argument %q is not a number but %T", key, v)
		}
		*dst = f
		return nil
	}

	if err := num("share_price", &a.SharePrice); err != nil {
		return a, err
	}
	if err := num("num_shares", &a.NumShares); err != nil {
		return a, err
	}
	if err := num("annual_dividend_yield_pct", &a.AnnualDividendYieldPct); err != nil {
		return a, err
	}
	if err := num("stock_appreciation_pct", &a.StockAppreciationPct); err != nil {
		return a, err
	}
	if err := num("dividend_growth_pct", &a.DividendGrowthPct); err != nil {
		return a, err
	}
	if err := num("annual_contribution", &a.AnnualContribution); err != nil {
		return a, err
	}

	if v, ok := args["holding_period_years"]; ok {
		f, ok := v.(float64)
		if !ok {
			return a, fmt.Errorf("argument %q is not a number but %T", "holding_period_years", v)
		}
		a.HoldingPeriodYears = int(f)
	}
	if v, ok := args["contribution_frequency"]; ok {
		s, ok := v.(string)
		if !ok {
			return a, fmt.Errorf("argument %q is not a string but %T", "contribution_frequency", v)
		}
		freq, err := divproj.ParseFrequency(s)
		if err != nil {
			return a, err
		}
		a.ContributionFrequency = freq
	}
	if v, ok := args["dividend_frequency"]; ok {
		s, ok := v.(string)
		if !ok {
			return a, fmt.Errorf("argument %q is not a string but %T", "dividend_frequency", v)
		}
		freq, err := divproj.ParseFrequency(s)
		if err != nil {
			return a, err
		}
		a.DividendFrequency = freq
	}
	if v, ok := args["reinvest_dividends"]; ok {
		b, ok := v.(bool)
		if !ok {
			return a, fmt.Errorf("argument %q is not a boolean but %T", "reinvest_dividends", v)
		}
		a.ReinvestDividends = b
	}

	return a, nil
}
