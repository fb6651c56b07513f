package web

import "html/template"

const (
	indexTemplate  = "index"
	resultTemplate = "result"
)

var templates = template.Must(template.Must(
	template.New(indexTemplate).Parse(indexHTML)).
	New(resultTemplate).Parse(resultHTML))

const headHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Plant Species Identification</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
fieldset { border: 1px solid #ccc; margin-bottom: 1.5rem; }
label { display: block; margin: 0.6rem 0 0.2rem; }
.warning { background: #fff3cd; border: 1px solid #ffe69c; padding: 0.6rem; }
.result { background: #d1e7dd; border: 1px solid #a3cfbb; padding: 0.6rem; }
.gallery { display: flex; flex-wrap: wrap; gap: 1rem; }
.gallery div { flex: 1 1 12rem; border: 1px solid #eee; padding: 0.6rem; }
pre { background: #f6f6f6; padding: 0.6rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>Plant Species Identification System</h1>
<p>Identifies the plant species from plant height (cm), leaf width (cm)
and stem quality (thin / medium / thick) with a decision tree.</p>`

const formHTML = `
{{if .Warning}}<p class="warning">{{.Warning}}</p>{{end}}
<form method="POST" action="/identify">
<fieldset>
<legend>Input plant measurements</legend>
<label for="height_cm">Plant height (cm)</label>
<input type="number" id="height_cm" name="height_cm" min="10" max="400" step="1" value="80" required>
<label for="leaf_width_cm">Leaf width (cm)</label>
<input type="number" id="leaf_width_cm" name="leaf_width_cm" min="0.2" max="20" step="0.1" value="4.0" required>
<label for="stem_quality">Stem quality</label>
<select id="stem_quality" name="stem_quality">
{{range .StemQualities}}<option value="{{.}}"{{if eq . "medium"}} selected{{end}}>{{.}}</option>
{{end}}</select>
<p><button type="submit">Identify species</button></p>
</fieldset>
</form>`

const galleryHTML = `
<h2>Plant species included</h2>
<div class="gallery">
{{range .Species}}<div>
<strong>{{.Name}}</strong><br>
<small>{{.Family}} &middot; {{.Group}}</small>
</div>
{{end}}</div>
</body>
</html>`

const indexHTML = headHTML + formHTML + galleryHTML

const resultHTML = headHTML + formHTML + `
<h2>Identification result</h2>
{{with .Result}}
{{if .Record}}
<p class="result">Predicted species: <strong>{{.Record.Name}}</strong></p>
<p><strong>Family:</strong> {{.Record.Family}} &middot; <strong>Group:</strong> {{.Record.Group}}</p>
{{if $.ImageOK}}<p><img src="/{{.Record.Image}}" alt="{{.Record.Name}}" width="320"></p>
{{else}}<p class="warning">Image not found for this species.</p>{{end}}
<h3>Species description</h3>
<p>{{.Record.Description}}</p>
<h3>Other plants in this group</h3>
<ul>{{range .Record.OtherPlants}}<li>{{.}}</li>{{end}}</ul>
{{else}}
<p class="warning">Predicted species <strong>{{.Species}}</strong> has no knowledge base record.</p>
{{end}}
<details>
<summary>View decision path</summary>
<pre>{{$.PathText}}</pre>
</details>
<details>
<summary>View decision tree rules</summary>
<pre>{{.Rules}}</pre>
</details>
{{end}}
` + galleryHTML
