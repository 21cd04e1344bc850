package handlers

import "net/http"

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Cable Short Circuit Calculator</title></head>
<body>
<h1>Cable Short Circuit Calculator</h1>
<p>POST a datasheet PDF to /api/extract, then POST the calculation data to
/api/generate_conductor_pdf, /api/generate_sheath_pdf or
/api/generate_merged_pdf.</p>
</body>
</html>
`

func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}
