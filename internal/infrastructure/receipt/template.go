package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// receipts print amounts the way Bolivian tickets do: "Bs. 1.234,50"
var spanish = language.MustParse("es-BO")

// FormatAmount renders a money amount with the Bs. prefix and Spanish digit
// grouping.
func FormatAmount(v float64) string {
	p := message.NewPrinter(spanish)
	return "Bs. " + p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": FormatAmount,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: monospace; font-size: 11px; width: 72mm; margin: 0 auto; }
h1 { font-size: 13px; text-align: center; margin: 4px 0; }
.meta { margin: 6px 0; }
table { width: 100%; border-collapse: collapse; }
td, th { text-align: left; padding: 1px 0; }
td.num, th.num { text-align: right; }
.totals { border-top: 1px dashed #000; margin-top: 6px; padding-top: 4px; }
.totals .grand { font-weight: bold; }
.footer { text-align: center; margin-top: 8px; }
</style>
</head>
<body>
<h1>{{.StoreName}}</h1>
<div class="meta">
Pedido: {{.OrderID}}<br>
Fecha: {{.IssuedAt.Format "02/01/2006 15:04"}}<br>
{{if .CustomerName}}Cliente: {{.CustomerName}}<br>{{end}}
Pago: {{.PaymentMethod}}
</div>
<table>
<tr><th>Producto</th><th class="num">Cant.</th><th class="num">Precio</th><th class="num">Total</th></tr>
{{range .Lines}}
<tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{money .Price}}</td><td class="num">{{money .Total}}</td></tr>
{{end}}
</table>
<div class="totals">
{{if gt .DeliveryCost 0.0}}Envío: {{money .DeliveryCost}}<br>{{end}}
<span class="grand">Total: {{money .Total}}</span><br>
Recibido: {{money .TotalReceived}}
{{if gt .Installments 0}}<br>Cuotas: {{.Installments}}{{end}}
</div>
{{if .Notes}}<div class="meta">{{.Notes}}</div>{{end}}
<div class="footer">¡Gracias por su compra!</div>
</body>
</html>`))

// RenderHTML produces the receipt document as HTML
func RenderHTML(r Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("receipt: template execution failed: %w", err)
	}
	return buf.String(), nil
}
