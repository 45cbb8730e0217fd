// Package translation detects the language of extracted text and translates
// it into a target language. Google Cloud Translation is the default
// service; OpenAI and Gemini chat models can be used instead.
package translation
