package toolspec

// Spec describes one tool enabled for a configuration, already filtered
// for provider compatibility by the caller.
type Spec struct {
	Name          string
	ToolType      string
	Configuration map[string]interface{}
}

// Formatter shapes a tool spec into the parameter object one provider's
// API expects. One variant per provider; adding a provider means adding
// a variant, not extending a conditional chain.
type Formatter interface {
	Format(t Spec) map[string]interface{}
}

var formatters = map[string]Formatter{
	"openai":    openaiFormatter{},
	"anthropic": anthropicFormatter{},
}

// FormatterFor returns the formatter registered for a provider, falling
// back to the generic shape.
func FormatterFor(provider string) Formatter {
	if f, ok := formatters[provider]; ok {
		return f
	}
	return genericFormatter{}
}

// FormatAll renders every spec with the provider's formatter.
func FormatAll(provider string, specs []Spec) []map[string]interface{} {
	if len(specs) == 0 {
		return nil
	}
	f := FormatterFor(provider)
	out := make([]map[string]interface{}, 0, len(specs))
	for _, s := range specs {
		out = append(out, f.Format(s))
	}
	return out
}

// openaiFormatter emits {"type": "web_search", ...config}. The configured
// type wins over the spec's ToolType when both are present.
type openaiFormatter struct{}

func (openaiFormatter) Format(t Spec) map[string]interface{} {
	out := cloneConfig(t.Configuration)
	if _, ok := out["type"]; !ok {
		out["type"] = t.ToolType
	}
	return out
}

// anthropicFormatter emits {"name": ..., "type": ..., ...config}.
type anthropicFormatter struct{}

func (anthropicFormatter) Format(t Spec) map[string]interface{} {
	out := cloneConfig(t.Configuration)
	out["name"] = t.Name
	out["type"] = t.ToolType
	return out
}

// genericFormatter emits {"type": ..., ...config}.
type genericFormatter struct{}

func (genericFormatter) Format(t Spec) map[string]interface{} {
	out := cloneConfig(t.Configuration)
	out["type"] = t.ToolType
	return out
}

func cloneConfig(cfg map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(cfg)+2)
	for k, v := range cfg {
		out[k] = v
	}
	return out
}
