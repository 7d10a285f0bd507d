package report

// TemplateProvider returns the fresh, zero-valued destination report every
// merge starts from. The merger never special-cases first vs subsequent
// merges, it always begins with this template.
type TemplateProvider interface {
	NewReport() Report
}

type templateProvider struct{}

// NewTemplateProvider ...
func NewTemplateProvider() TemplateProvider {
	return templateProvider{}
}

func (templateProvider) NewReport() Report {
	return Report{
		Version: FormatVersion,
		Stats:   Stats{},
		Suites: SuiteForest{
			Suites: []Suite{},
		},
	}
}
