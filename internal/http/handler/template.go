package handler

import (
	"html/template"

	"pdfmeta/internal/model"
)

// viewerTemplate renders the single-page metadata viewer: the upload form,
// an optional error line, and the populated report sections.
var viewerTemplate = template.Must(template.New("viewer").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>PDF Metadata Viewer</title>
    <style>
      :root {
        --bg: #f6f3ec;
        --fg: #1a1a1a;
        --accent: #a24d2f;
        --card: #fffaf1;
        --muted: #6b625a;
      }
      body {
        margin: 0;
        font-family: "Georgia", "Times New Roman", serif;
        background: var(--bg);
        color: var(--fg);
      }
      .wrap {
        max-width: 980px;
        margin: 0 auto;
        padding: 32px 20px 60px;
      }
      header {
        margin-bottom: 18px;
      }
      h1 {
        font-size: 32px;
        margin: 0 0 8px;
        letter-spacing: 0.5px;
      }
      p {
        margin: 0;
        color: var(--muted);
      }
      form {
        margin: 18px 0 28px;
        display: grid;
        gap: 10px;
      }
      .card {
        background: var(--card);
        border: 1px solid #e2d8c7;
        border-radius: 12px;
        padding: 16px;
      }
      input[type="file"] {
        padding: 8px;
      }
      button {
        width: 180px;
        padding: 10px 14px;
        border: none;
        border-radius: 8px;
        background: var(--accent);
        color: white;
        font-weight: 600;
        cursor: pointer;
      }
      button:hover {
        filter: brightness(0.95);
      }
      .grid {
        display: grid;
        gap: 12px;
      }
      .grid-2 {
        grid-template-columns: repeat(auto-fit, minmax(260px, 1fr));
      }
      dl {
        margin: 0;
      }
      dt {
        font-weight: 700;
        margin-top: 8px;
      }
      dd {
        margin: 2px 0 0 0;
        color: var(--muted);
        word-break: break-word;
      }
      pre {
        background: #1f1b16;
        color: #f0e6d8;
        padding: 14px;
        border-radius: 10px;
        overflow: auto;
        max-height: 420px;
      }
      .error {
        color: #8b1c1c;
        font-weight: 600;
      }
    </style>
  </head>
  <body>
    <div class="wrap">
      <header>
        <h1>PDF Metadata Viewer</h1>
        <p>Upload a PDF to view parsed fields and raw metadata.</p>
      </header>

      <form method="post" enctype="multipart/form-data" class="card">
        <input type="file" name="pdf" accept="application/pdf" />
        <button type="submit">Extract Metadata</button>
      </form>

      {{if .Error}}
        <p class="error">{{.Error}}</p>
      {{end}}

      {{if .Result}}
        <section class="grid grid-2">
          <div class="card">
            <h2>Parsed Fields</h2>
            <dl>
              {{range .Result.Parsed.Items}}
                <dt>{{.Label}}</dt>
                <dd>{{if .Value}}{{.Value}}{{else}}-{{end}}</dd>
              {{end}}
            </dl>
          </div>
          <div class="card">
            <h2>File Summary</h2>
            <dl>
              <dt>Filename</dt>
              <dd>{{.Result.Filename}}</dd>
              <dt>File Size (bytes)</dt>
              <dd>{{.Result.SizeBytes}}</dd>
              <dt>Pages</dt>
              <dd>{{.Result.PageCount}}</dd>
            </dl>
          </div>
        </section>

        <section class="card">
          <h2>Raw PDF Info Dictionary</h2>
          <pre>{{.Result.RawInfo}}</pre>
        </section>

        <section class="card">
          <h2>XMP Metadata (raw XML)</h2>
          <pre>{{with $.XMPXML}}{{.}}{{else}}No XMP metadata found.{{end}}</pre>
        </section>
      {{end}}
    </div>
  </body>
</html>
`))

// viewerData is the template context for the viewer page.
type viewerData struct {
	Error string
	// Result is nil until a successful extraction.
	Result *model.ExtractionResult
	// XMPXML mirrors Result.XMPXML with absence flattened to "".
	XMPXML string
}
