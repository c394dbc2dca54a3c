package templates

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateData contains the data passed to entry-point templates
type TemplateData struct {
	Framework string
	Config    string
}

const declareConfig = `
declare module 'overmind' {
  interface Config extends IConfig<typeof config> {}
}
`

var appIndexTemplates = map[string]*template.Template{
	"react": template.Must(template.New("react").Parse(`
import { IConfig } from 'overmind'
import { createHook } from 'overmind-react'
{{.Config}}
` + declareConfig + `
export const useOvermind = createHook<typeof config>()
`)),
	"angular": template.Must(template.New("angular").Parse(`
import { Injectable } from '@angular/core'
import { IConfig } from 'overmind'
import { OvermindService } from 'overmind-angular'
{{.Config}}
` + declareConfig + `
@Injectable()
export class Store extends OvermindService<typeof config> {}
`)),
	"vue": template.Must(template.New("vue").Parse(`
import { Overmind, IConfig } from 'overmind'
import { createPlugin } from 'overmind-vue'
{{.Config}}
` + declareConfig + `
const overmind = new Overmind(config)

export const OvermindPlugin = createPlugin(overmind)
`)),
}

var genericTemplate = template.Must(template.New("generic").Parse(`
import { IConfig } from 'overmind'
{{.Config}}
` + declareConfig))

// RenderAppIndex renders the TypeScript overmind/index.ts for a framework
// around the given config body. Unknown frameworks get the plain config
// declaration.
func RenderAppIndex(framework, body string) (string, error) {
	tmpl, ok := appIndexTemplates[framework]
	if !ok {
		tmpl = genericTemplate
	}

	data := TemplateData{
		Framework: framework,
		Config:    strings.TrimSpace(body),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute app index template %s: %w", tmpl.Name(), err)
	}

	return sb.String(), nil
}

// TSAppIndex is RenderAppIndex for static tables. The templates are parsed
// at init, so a failure here is a programming error.
func TSAppIndex(framework, body string) string {
	out, err := RenderAppIndex(framework, body)
	if err != nil {
		panic(err)
	}
	return out
}

