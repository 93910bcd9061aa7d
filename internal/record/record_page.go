package record

import "html/template"

// PageData feeds the viewer page.
type PageData struct {
	View    RecordView
	State   ViewState
	Notices []string
	Columns []string
}

const pageTemplateName = "index"

// PageTemplate parses the viewer page. It is inlined so the binary carries
// no template files.
func PageTemplate() *template.Template {
	return template.Must(template.New(pageTemplateName).Parse(pageHTML))
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Excel Upload &amp; Record Viewer</title>
<style>
  body { margin: 0; min-height: 100vh; display: flex; flex-direction: column; background: #f3f4f6; font-family: system-ui, sans-serif; }
  main { flex-grow: 1; padding: 2rem; }
  h1 { text-align: center; font-size: 1.5rem; }
  .card { background: #fff; padding: 1rem; border-radius: 4px; box-shadow: 0 1px 3px rgba(0,0,0,.1); margin-bottom: 1.5rem; display: flex; gap: .5rem; align-items: center; }
  .card input[type=file] { flex: 1; border: 1px solid #ccc; border-radius: 4px; padding: .25rem .5rem; }
  .btn { background: #2563eb; color: #fff; border: 0; border-radius: 4px; padding: .5rem 1rem; cursor: pointer; }
  .btn:hover { background: #1d4ed8; }
  .btn[disabled] { opacity: .6; cursor: not-allowed; }
  .search { width: 100%; padding: .5rem; border: 1px solid #ccc; border-radius: 4px; margin-bottom: 1rem; box-sizing: border-box; }
  .notice { background: #fef3c7; border: 1px solid #f59e0b; padding: .5rem 1rem; border-radius: 4px; margin-bottom: 1rem; }
  table { min-width: 100%; background: #fff; font-size: .875rem; border-collapse: collapse; }
  thead { background: #e5e7eb; }
  th, td { padding: .5rem; text-align: left; white-space: nowrap; }
  tbody tr { border-top: 1px solid #e5e7eb; }
  tbody tr:hover { background: #f9fafb; }
  .empty { text-align: center; }
  .pagination { display: flex; flex-wrap: wrap; justify-content: center; gap: .5rem; margin-top: 1.5rem; }
  .page-btn { padding: .25rem .75rem; border: 1px solid #ccc; border-radius: 4px; background: #fff; color: #111; text-decoration: none; }
  .page-btn:hover { background: #e5e7eb; }
  .page-btn.active { background: #2563eb; color: #fff; }
  footer { background: #e5e7eb; text-align: center; padding: .75rem; font-size: .875rem; color: #374151; }
  footer .author { font-weight: 600; }
</style>
</head>
<body>
<main>
  <h1>Excel Upload &amp; Record Viewer</h1>

  {{range .Notices}}<div class="notice" role="alert">{{.}}</div>
  {{end}}

  <form class="card" method="post" action="/upload" enctype="multipart/form-data">
    <input type="file" name="file" accept=".xlsx, .xls">
    {{if .State.SelectedFile}}<span class="selected">{{.State.SelectedFile}}</span>{{end}}
    <button class="btn" type="submit"{{if .State.Uploading}} disabled{{end}}>{{if .State.Uploading}}Uploading{{else}}Upload{{end}}</button>
  </form>

  <form method="post" action="/search">
    <input class="search" type="text" name="q" value="{{.State.SearchTerm}}" placeholder="Search by name, empcode, dept...">
  </form>

  <div class="table-wrap">
    <table>
      <thead>
        <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
      </thead>
      <tbody>
        {{range .View.Records}}<tr class="record-row">
          <td>{{.Empcode}}</td>
          <td>{{.FirstName}}</td>
          <td>{{.LastName}}</td>
          <td>{{.Dept}}</td>
          <td>{{.Region}}</td>
          <td>{{.Branch}}</td>
          <td>{{.Hiredate.Display}}</td>
          <td>{{.Salary.Display}}</td>
        </tr>
        {{else}}<tr><td class="empty" colspan="8">No records found.</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>

  <nav class="pagination">
    {{range .View.Pages}}<a class="page-btn{{if eq . $.View.Page}} active{{end}}" href="/?page={{.}}">{{.}}</a>
    {{end}}
  </nav>
</main>
<footer>Build and Design by <span class="author">Shubham</span></footer>
</body>
</html>
`
