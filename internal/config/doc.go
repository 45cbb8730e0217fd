// Package config loads the imgtrans settings file and resolves the
// credentials used by the external OCR and translation services.
package config
