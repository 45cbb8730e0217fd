// Package languages lists the target languages supported by the
// translation service, so users can discover valid language codes.
package languages
