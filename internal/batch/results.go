package batch

// Results maps image file names to their translated text, remembering the
// order in which images were processed
type Results struct {
	translations map[string]string
	order        []string
}

// NewResults creates an empty result set
func NewResults() *Results {
	return &Results{
		translations: make(map[string]string),
	}
}

// Add records the translation for an image
func (r *Results) Add(name, translation string) {
	if _, ok := r.translations[name]; !ok {
		r.order = append(r.order, name)
	}
	r.translations[name] = translation
}

// Get retrieves the translation for an image
func (r *Results) Get(name string) (string, bool) {
	translation, ok := r.translations[name]
	return translation, ok
}

// All returns all translations keyed by image file name
func (r *Results) All() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string, len(r.translations))
	for k, v := range r.translations {
		result[k] = v
	}
	return result
}

// Names returns the image file names in processing order
func (r *Results) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of translated images
func (r *Results) Len() int {
	return len(r.translations)
}
