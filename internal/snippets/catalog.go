// Package snippets holds the example Overmind files shown in the getting
// started guide, keyed by language mode and UI framework.
package snippets

import (
	"sort"

	"github.com/samber/lo"

	"github.com/barisgit/overmind-guide/internal/templates"
)

// File is a single example file of a generated guide project
type File struct {
	FileName string `json:"fileName" yaml:"file_name"`
	Code     string `json:"code" yaml:"code"`
}

// Language is the language mode of the generated examples
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
)

// LanguageOf maps the guide's TypeScript toggle to a language mode
func LanguageOf(isTypeScript bool) Language {
	if isTypeScript {
		return TypeScript
	}
	return JavaScript
}

// Known frameworks
const (
	React   = "react"
	Vue     = "vue"
	Angular = "angular"
)

// ComposeFunc wraps a config body into a full entry-point file for a framework
type ComposeFunc func(framework, body string) string

// Catalog maps language -> framework -> ordered files. It is read-only
// once built.
type Catalog struct {
	entries map[Language]map[string][]File
	// aliases resolves a framework in one language to the entry of another
	aliases map[Language]map[string]Language
}

const stateTS = `
export type Post = {
  id: number
  title: string
  body: string
}

export type State = {
  isLoadingPosts: boolean
  posts: Post[]
}

export const state: State = {
  isLoadingPosts: false,
  posts: []
}
`

const configBody = `
import { state } from './state'

const config = {
  state,
}
`

// NewCatalog builds the guide catalog, composing TypeScript entry points
// with compose
func NewCatalog(compose ComposeFunc) *Catalog {
	javascript := map[string][]File{
		React: {
			{
				FileName: "overmind/index.js",
				Code: `
import { Overmind } from 'overmind'
import { createConnect } from 'overmind-react'

export const overmind = new Overmind({
  state: {
    isLoadingPosts: false
  }
})

export const connect = createConnect(overmind)
`,
			},
		},
		Vue: {
			{
				FileName: "overmind/index.js",
				Code: `
import { Overmind } from 'overmind'
import { createPlugin } from 'overmind-vue'

export const overmind = new Overmind({
  state: {
    isLoadingPosts: false
  }
})

export const OvermindPlugin = createPlugin(overmind)
`,
			},
		},
	}

	typescript := map[string][]File{
		React: {
			{FileName: "overmind/state.ts", Code: stateTS},
			{FileName: "overmind/index.ts", Code: compose(React, configBody)},
		},
		Angular: {
			{FileName: "overmind/state.ts", Code: stateTS},
			{FileName: "overmind/index.ts", Code: compose(Angular, configBody)},
		},
	}

	return &Catalog{
		entries: map[Language]map[string][]File{
			JavaScript: javascript,
			TypeScript: typescript,
		},
		aliases: map[Language]map[string]Language{
			// The Vue setup is identical in both modes
			TypeScript: {Vue: JavaScript},
		},
	}
}

// Lookup returns the files for a language mode and framework. Unknown
// frameworks report false.
func (c *Catalog) Lookup(isTypeScript bool, framework string) ([]File, bool) {
	lang := LanguageOf(isTypeScript)
	if target, ok := c.aliases[lang][framework]; ok {
		lang = target
	}
	files, ok := c.entries[lang][framework]
	return files, ok
}

// Select returns the stored files for a language mode and framework, or nil
// when the framework has no entry. The returned slice is shared and must
// not be modified.
func (c *Catalog) Select(isTypeScript bool, framework string) []File {
	files, _ := c.Lookup(isTypeScript, framework)
	return files
}

// Frameworks returns the sorted framework names available in a language mode
func (c *Catalog) Frameworks(isTypeScript bool) []string {
	lang := LanguageOf(isTypeScript)
	names := append(lo.Keys(c.entries[lang]), lo.Keys(c.aliases[lang])...)
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// Default is the catalog rendered by the guide
var Default = NewCatalog(templates.TSAppIndex)

// Select looks up files in the Default catalog
func Select(isTypeScript bool, framework string) []File {
	return Default.Select(isTypeScript, framework)
}
