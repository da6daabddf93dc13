package redirect

import (
	"bytes"
	"text/template"
)

// pageTemplate is rendered with text/template: html/template would escape the
// slashes inside the script string literal.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta http-equiv="refresh" content="0;url={{.}}">
    <title>Redirecting...</title>
    <script type="text/javascript">
        window.location.href = '{{.}}';
    </script>
</head>
<body>
    <p>If you are not redirected automatically, <a href="{{.}}">click here to download the asset</a>.</p>
</body>
</html>`

var page = template.Must(template.New("redirect").Parse(pageTemplate))

// DownloadURL returns the site-absolute URL a copied asset is served from.
func DownloadURL(fileName string) string {
	return "/" + DownloadsDir + "/" + fileName
}

// RenderPage renders the redirect page pointing at the download URL of fileName.
func RenderPage(fileName string) ([]byte, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, DownloadURL(fileName)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
