package summary

import (
	"bytes"
	"html/template"
)

var fragmentTemplate = template.Must(template.New("summary").Parse(`<div id="summary-values">
<h3>Your values</h3>
{{range .Values}}<div class="value-line"><p><strong>{{.Label}}:</strong> {{.Preference}} ({{.Value}}%)</p><div class="pref-bar" data-value="{{.Value}}"><div class="pref-dot" style="left: {{.Value}}%"></div></div></div>
{{end}}{{with .OtherReasons}}<p><strong>Other reasons:</strong> {{.}}</p>
{{end}}</div>
<div id="summary-understood">
<h3>What you understand</h3>
<ul id="summary-facts-list">{{range .Understood}}<li>{{.}}</li>{{end}}</ul>
</div>
<div id="summary-review-needed"{{if not .ReviewNeeded}} class="hidden"{{end}}>
<h3>Facts to review</h3>
<ul id="summary-review-list">{{range .Review}}<li>{{.}}</li>{{end}}</ul>
</div>
<div id="summary-decision">
<h3>Your decision</h3>
<p><strong>Comfort with AI in your care:</strong> <span id="summary-comfort">{{.Comfort}}</span></p>
<p><strong>Your comments:</strong> <span id="summary-decision-comments">{{.DecisionNotes}}</span></p>
<p><strong>How sure you feel:</strong> <span id="summary-certainty">{{.Certainty}}</span></p>
<p><strong>Next steps:</strong> <span id="summary-next-steps-text">{{.NextSteps}}</span></p>
<p><strong>Questions or concerns:</strong> <span id="summary-concerns">{{.Concerns}}</span></p>
</div>
`))

// HTML renders s as the fragment written into the summary step. User text
// is escaped.
func (s Summary) HTML() (string, error) {
	var buf bytes.Buffer
	if err := fragmentTemplate.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}
