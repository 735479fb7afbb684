package export

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/templates"
)

//go:embed view.gohtml
var viewSource string

var viewTmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join":    strings.Join,
	"fmtDate": func(t time.Time) string { return t.Format(model.DateLayout) },
}).Parse(viewSource))

// viewStyle carries the preset's tokens as trusted CSS: every value is
// compiled into the registry, never user input.
type viewStyle struct {
	PrimaryColor   template.CSS
	SecondaryColor template.CSS
	TextColor      template.CSS
	AccentColor    template.CSS
	FontFamily     template.CSS
}

type viewData struct {
	Doc   model.ResumeDocument
	Style viewStyle
}

// RenderView produces the printable HTML view of a document styled with
// the given preset. The output is a self-contained page whose #resume
// node is what the PDF pipeline prints.
func RenderView(doc model.ResumeDocument, tpl templates.Template) (string, error) {
	data := viewData{
		Doc: doc,
		Style: viewStyle{
			PrimaryColor:   template.CSS(tpl.Styles.PrimaryColor),
			SecondaryColor: template.CSS(tpl.Styles.SecondaryColor),
			TextColor:      template.CSS(tpl.Styles.TextColor),
			AccentColor:    template.CSS(tpl.Styles.AccentColor),
			FontFamily:     template.CSS(tpl.Styles.FontFamily),
		},
	}

	var buf bytes.Buffer
	if err := viewTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
