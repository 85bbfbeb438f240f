// internal/session/demo.go
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/agent"
	"github.com/janmitra/mitra-cli/internal/config"
	"github.com/janmitra/mitra-cli/internal/llm"
	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/memory"
	"github.com/janmitra/mitra-cli/internal/tools"
	"github.com/janmitra/mitra-cli/internal/voice"
)

// demoScripts holds one scripted conversation per language. Every script
// walks the same arc: an application request that already carries the age,
// the income and category answers, an eligibility question once the profile
// is complete, and a self-correction that triggers a contradiction notice.
var demoScripts = map[string][]string{
	locale.Telugu: {
		"నాకు పింఛను కోసం దరఖాస్తు చేయాలి. నా వయస్సు 65 సంవత్సరాలు.",
		"నా వార్షిక ఆదాయం 40000 రూపాయలు.",
		"నేను జనరల్ కేటగిరీ.",
		"నాకు ఏ పథకాలు వస్తాయో చెప్పండి.",
		"క్షమించండి, నా ఆదాయం 30000 రూపాయలు.",
	},
	locale.Tamil: {
		"எனக்கு ஓய்வூதியத்திற்கு விண்ணப்பிக்க வேண்டும். என் வயது 70.",
		"என் வருமானம் 50000 ரூபாய்.",
		"நான் பொது வகை.",
		"எனக்கு என்ன திட்டங்கள் கிடைக்கும்?",
		"மன்னிக்கவும், என் வருமானம் 150000 ரூபாய்.",
	},
	locale.Marathi: {
		"मला घरकुलासाठी अर्ज करायचा आहे. माझे वय 38 वर्षे आहे.",
		"माझे वार्षिक उत्पन्न 90000 रुपये आहे.",
		"मी सामान्य प्रवर्गातून आहे.",
		"मला कोणत्या योजना मिळू शकतात?",
		"माफ करा, माझे उत्पन्न 130000 रुपये आहे.",
	},
	locale.Bengali: {
		"আমি ভাতার জন্য আবেদন করতে চাই। আমার বয়স 62 বছর।",
		"আমার বার্ষিক আয় 80000 টাকা।",
		"আমি সাধারণ শ্রেণীর মানুষ।",
		"আমি কোন কোন প্রকল্প পেতে পারি?",
		"দুঃখিত, আমার আয় 120000 টাকা।",
	},
	locale.Odia: {
		"ମୁଁ ଭତ୍ତା ପାଇଁ ଆବେଦନ କରିବାକୁ ଚାହୁଁଛି। ମୋ ବୟସ 65 ବର୍ଷ।",
		"ମୋର ବାର୍ଷିକ ଆୟ 60000 ଟଙ୍କା।",
		"ମୁଁ ସାଧାରଣ ବର୍ଗର।",
		"ମୁଁ କେଉଁ ଯୋଜନା ପାଇପାରିବି?",
		"କ୍ଷମା କରନ୍ତୁ, ମୋ ଆୟ 110000 ଟଙ୍କା।",
	},
	locale.English: {
		"I want to apply for a pension. I am 65 years old.",
		"My annual income is 40000 rupees.",
		"I belong to the General category.",
		"Which schemes can I get?",
		"Sorry, my income is actually 150000 rupees.",
	},
}

// DemoTurn records one traced conversation cycle.
type DemoTurn struct {
	Input    string   `json:"input"`
	Intent   string   `json:"intent"`
	Tools    []string `json:"tools"`
	Failed   bool     `json:"failed,omitempty"`
	Response string   `json:"response"`
}

// DemoReport is the machine-readable summary of one demo run.
type DemoReport struct {
	Language   string            `json:"language"`
	Turns      []DemoTurn        `json:"turns"`
	Statistics memory.Statistics `json:"statistics"`
}

// Demo replays the script for the configured language through a fresh agent,
// tracing every phase of every cycle to out. It runs fully offline: the voice
// backend is scripted and the provider is the mock, so the trace is the
// templated output and identical on every run. Languages without a script
// fall back to the Telugu one.
func Demo(ctx context.Context, cfg *config.Config, out io.Writer, logger *zap.Logger) (*DemoReport, error) {
	language := cfg.Agent.DefaultLanguage
	script, ok := demoScripts[language]
	if !ok {
		language = locale.Telugu
		script = demoScripts[language]
	}

	registry, err := tools.NewDefaultRegistry(logger)
	if err != nil {
		return nil, err
	}
	ag := agent.New(cfg.Agent, registry, llm.NewMockProvider(), logger)
	backend := voice.NewScripted(logger, script...)

	banner(out, fmt.Sprintf("Mitra demo, language %s (%s)", language, locale.LanguageName(language)))
	fmt.Fprintf(out, "session %s, %d scripted turns\n", ag.SessionID(), len(script))

	report := &DemoReport{Language: language}
	for i := range script {
		turn, err := demoTurn(ctx, ag, backend, language, i+1, out)
		if err != nil {
			return nil, err
		}
		report.Turns = append(report.Turns, turn)
	}
	report.Statistics = ag.Memory().Statistics()

	banner(out, "session summary")
	stats := report.Statistics
	fmt.Fprintf(out, "turns: %d (user %d, assistant %d)\n", stats.TotalTurns, stats.UserTurns, stats.AssistantTurns)
	fmt.Fprintf(out, "profile fields: %d\n", stats.ProfileFields)
	fmt.Fprintf(out, "contradictions: %d\n", stats.Contradictions)
	fmt.Fprintf(out, "languages: %s\n", strings.Join(stats.Languages, ", "))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding demo report: %w", err)
	}
	fmt.Fprintf(out, "%s\n", data)
	return report, nil
}

// demoTurn drives one cycle phase by phase, so the trace shows the state
// machine at work rather than just the final reply.
func demoTurn(ctx context.Context, ag *agent.Agent, backend *voice.Scripted, language string, number int, out io.Writer) (DemoTurn, error) {
	fmt.Fprintf(out, "\n-- turn %d --\n", number)

	text, turnLanguage, err := ag.ListenAndProcess(ctx, backend, language)
	if err != nil {
		return DemoTurn{}, err
	}
	fmt.Fprintf(out, "[%s] user: %s\n", ag.State(), text)

	plan, err := ag.Plan(text, turnLanguage)
	if err != nil {
		return DemoTurn{}, err
	}
	fmt.Fprintf(out, "[%s] intent %s\n", ag.State(), plan.Intent)
	for _, action := range plan.Actions {
		fmt.Fprintf(out, "  %s: %s\n", action.Tool, action.Description)
	}

	observations, err := ag.Execute(ctx, plan)
	if err != nil {
		return DemoTurn{}, err
	}
	failed := false
	fmt.Fprintf(out, "[%s]\n", ag.State())
	for _, obs := range observations {
		if obs.Failed() {
			failed = true
			fmt.Fprintf(out, "  %s: failed: %v\n", obs.Tool, obs.Err)
			continue
		}
		fmt.Fprintf(out, "  %s: ok\n", obs.Tool)
	}

	response, err := ag.Evaluate(ctx, plan, observations)
	if err != nil {
		return DemoTurn{}, err
	}
	fmt.Fprintf(out, "[%s] agent: %s\n", ag.State(), response)

	return DemoTurn{
		Input:    text,
		Intent:   string(plan.Intent),
		Tools:    plan.ToolNames(),
		Failed:   failed,
		Response: response,
	}, nil
}

// banner prints a framed section title, same width as the original driver.
func banner(out io.Writer, title string) {
	line := strings.Repeat("=", 80)
	fmt.Fprintf(out, "%s\n%s\n%s\n", line, title, line)
}
