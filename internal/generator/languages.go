package generator

import "github.com/makebytes/makebytes/internal/textwriter"

// language binds an option key to its emitter.
type language struct {
	Key  string
	Name string
	emit func(g *Generator, d Descriptor, w *textwriter.Writer) error
}

// languages lists the supported targets in generation order.
var languages = []language{
	{Key: "c", Name: "C", emit: (*Generator).emitC},
	{Key: "cpp", Name: "C++", emit: (*Generator).emitCpp},
	{Key: "csharp", Name: "C#", emit: (*Generator).emitCSharp},
	{Key: "java", Name: "Java", emit: (*Generator).emitJava},
	{Key: "python", Name: "Python", emit: (*Generator).emitPython},
}

func isLanguageKey(key string) bool {
	for _, l := range languages {
		if l.Key == key {
			return true
		}
	}
	return false
}

// LanguageKeys returns the option keys of all supported languages.
func LanguageKeys() []string {
	keys := make([]string, len(languages))
	for i, l := range languages {
		keys[i] = l.Key
	}
	return keys
}
