package relsdk

import (
	"fmt"
	"log"

	lua "github.com/yuin/gopher-lua"
)

// ──────────────────────────────────────────────
// Script Classifiers — Lua-defined custom relevance rules
// ──────────────────────────────────────────────

// scriptRule is one registered Lua classifier. The source must define
//
//	function classify(text)
//	    return relevant, confidence, reasoning
//	end
//
// where relevant is a boolean, confidence a number in [0,1] and reasoning
// a string.
type scriptRule struct {
	feature string
	source  string
}

// RegisterScriptClassifier adds a Lua-scripted classifier for a custom
// feature. The feature is added to the registry (enabled, with the given
// priority) so that analyses referencing it always resolve. Registration
// validates the script up front; runtime failures during analysis are
// swallowed and logged like every other analysis failure.
func (e *Engine) RegisterScriptClassifier(feature Feature, source string) error {
	if feature.Name == "" {
		return fmt.Errorf("script classifier: feature name is empty")
	}
	if _, exists := e.registry.Get(feature.Name); exists {
		return fmt.Errorf("script classifier: feature %s already registered", feature.Name)
	}
	if err := validateScript(source); err != nil {
		return fmt.Errorf("script classifier %s: %w", feature.Name, err)
	}

	e.registry.add(feature)
	e.scripts = append(e.scripts, &scriptRule{feature: feature.Name, source: source})
	log.Printf("[ScriptClassifier] Registered: %s", feature.Name)
	return nil
}

func validateScript(source string) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(source); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if _, ok := L.GetGlobal("classify").(*lua.LFunction); !ok {
		return fmt.Errorf("script does not define classify(text)")
	}
	return nil
}

// runScriptRules evaluates every registered script against the text and
// returns the analyses of the rules that fired. A failing script skips its
// own verdict only; the built-in classifiers are unaffected.
func (e *Engine) runScriptRules(text string) []FeatureAnalysis {
	var analyses []FeatureAnalysis
	for _, rule := range e.scripts {
		analysis, fired, err := rule.eval(text)
		if err != nil {
			e.failuresSwallowed.Inc()
			log.Printf("[ScriptClassifier] %s eval failed: %v", rule.feature, err)
			continue
		}
		if fired {
			analyses = append(analyses, analysis)
		}
	}
	return analyses
}

func (r *scriptRule) eval(text string) (FeatureAnalysis, bool, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(r.source); err != nil {
		return FeatureAnalysis{}, false, err
	}

	err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal("classify"),
		NRet:    3,
		Protect: true,
	}, lua.LString(text))
	if err != nil {
		return FeatureAnalysis{}, false, err
	}

	relevant := lua.LVAsBool(L.Get(-3))
	confidence := float64(lua.LVAsNumber(L.Get(-2)))
	reasoning := lua.LVAsString(L.Get(-1))
	L.Pop(3)

	if !relevant {
		return FeatureAnalysis{}, false, nil
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return FeatureAnalysis{
		Feature:          r.feature,
		Confidence:       confidence,
		Reasoning:        reasoning,
		SuggestedActions: []string{},
	}, true, nil
}
