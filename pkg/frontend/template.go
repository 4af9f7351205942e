package frontend

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Tripwise</title>
</head>
<body>
  <h1>Tripwise</h1>

  <form action="/search" method="get">
    <label for="destination">Destination city</label>
    <input type="text" id="destination" name="destination" value="{{.Destination}}">

    <label for="preference">Preference</label>
    <select id="preference" name="preference">
      <option value="fastest"{{if eq .Preference "fastest"}} selected{{end}}>Fastest</option>
      <option value="cheapest"{{if eq .Preference "cheapest"}} selected{{end}}>Cheapest</option>
      <option value="greenest"{{if eq .Preference "greenest"}} selected{{end}}>Greenest</option>
    </select>

    <button type="submit"{{if .SubmitDisabled}} disabled{{end}}>Get Recommendations</button>
  </form>

{{if .ResultsVisible}}
  <section id="results">
{{if .Loading}}
    <p id="loading">Loading...</p>
{{end}}
{{if .ErrorMessage}}
    <p id="error">{{.ErrorMessage}}</p>
{{end}}
{{with .Results}}
    <p id="origin">{{.OriginText}}</p>
{{if .ShowNotes}}
    <ul id="notes">
{{range .Notes}}      <li>{{.}}</li>
{{end}}    </ul>
{{end}}
    <ul id="recommendations">
{{if .EmptyMessage}}      <li>{{.EmptyMessage}}</li>
{{end}}{{range .Recommendations}}      <li>{{.Icon}} {{.Mode}}: {{.Duration}}, {{.Cost}}, CO2: {{.CO2}} {{.Source}}</li>
{{end}}    </ul>
{{end}}
  </section>
{{end}}
</body>
</html>
`))
