// Package attributes maps the open-ended question/answer section of a lead onto
// the closed attribute set understood by the customer API.
package attributes

import (
	_ "embed"
	"fmt"
	"strings"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/textnorm"
	"solar_lead_backend/platform/validator"

	govalidator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

type ruleFile struct {
	Rules []ruleSpec `yaml:"rules" validate:"required,min=1,unique=Target,dive"`
}

type ruleSpec struct {
	Target   string            `yaml:"target" validate:"required"`
	Keywords []string          `yaml:"keywords" validate:"required,min=1,dive,required"`
	Values   map[string]string `yaml:"values" validate:"omitempty,dive,keys,required,endkeys,required"`
	Numeric  bool              `yaml:"numeric"`
}

// rule is the loaded, read-only form of a ruleSpec.
type rule struct {
	target   string
	keywords []string
	values   map[string]string
	numeric  bool
}

func (r rule) matches(label string) bool {
	lower := textnorm.Lower(label)
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Mapper resolves lead attributes from question answers. It is immutable once
// built and safe for concurrent use.
type Mapper struct {
	rules []rule
}

// LoadDefault builds a Mapper from the embedded rule table.
func LoadDefault() (*Mapper, error) {
	return Parse(defaultRules)
}

// Parse builds a Mapper from a YAML rule table.
func Parse(data []byte) (*Mapper, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse attribute rules: %w", err)
	}

	val := validator.New()
	val.RegisterStructValidation(validateRuleKind, ruleSpec{})
	if err := val.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid attribute rules: %w", err)
	}

	rules := make([]rule, 0, len(file.Rules))
	for _, spec := range file.Rules {
		keywords := make([]string, len(spec.Keywords))
		for i, kw := range spec.Keywords {
			keywords[i] = textnorm.Lower(kw)
		}
		values := make(map[string]string, len(spec.Values))
		for k, v := range spec.Values {
			values[k] = v
		}
		rules = append(rules, rule{
			target:   spec.Target,
			keywords: keywords,
			values:   values,
			numeric:  spec.Numeric,
		})
	}

	return &Mapper{rules: rules}, nil
}

// validateRuleKind requires exactly one of a value table or numeric passthrough.
func validateRuleKind(sl govalidator.StructLevel) {
	spec := sl.Current().Interface().(ruleSpec)
	if spec.Numeric == (len(spec.Values) > 0) {
		sl.ReportError(spec.Values, "Values", "values", "values_xor_numeric", "")
	}
}

// Targets lists the attribute keys the mapper can emit, in table order.
func (m *Mapper) Targets() []string {
	targets := make([]string, len(m.rules))
	for i, r := range m.rules {
		targets[i] = r.target
	}
	return targets
}

// Map resolves every rule against questions. For each rule the first matching
// label is used. Answers absent from a value table are dropped, not defaulted.
func (m *Mapper) Map(questions domain.Questions) map[string]string {
	attrs := make(map[string]string, len(m.rules))

	for _, r := range m.rules {
		q, ok := questions.First(r.matches)
		if !ok {
			continue
		}

		raw := q.Answer.String()
		if r.numeric {
			attrs[r.target] = raw
			continue
		}
		if mapped, ok := r.values[raw]; ok {
			attrs[r.target] = mapped
		}
	}

	return attrs
}
