// Package printview renders an invoice for the outside world: the printable
// HTML document, the WhatsApp share link, and the A4 PDF export.
package printview

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"temiperi-stocks-backend/internal/model"
)

const companyName = "TEMIPERI ENTERPRISE"

func formatMoney(v float64) string {
	return fmt.Sprintf("GH₵%.2f", v)
}

func paymentMethodLabel(m model.PaymentMethod) string {
	switch m {
	case model.PaymentMomo:
		return "Mobile Money"
	case model.PaymentCredit:
		return "Credit"
	case model.PaymentCash:
		return "Cash"
	case model.PaymentMomoCash:
		return "Mobile Money & Cash"
	default:
		return "N/A"
	}
}

var printTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": formatMoney,
	"inc":   func(i int) int { return i + 1 },
	"mul":   func(q int, p float64) float64 { return float64(q) * p },
}).Parse(printDocument))

type printData struct {
	Invoice       *model.Invoice
	Company       string
	PaymentLabel  string
	Date          string
	Time          string
	DeliveryDate  string
	AmountPaid    float64
	Balance       float64
	BalanceLabel  string
	BalanceIsOwed bool
}

// RenderHTML produces the self-contained print window document for an
// invoice: inline print styles plus the CDN utility stylesheet, the order
// summary table and the signature footer.
func RenderHTML(inv *model.Invoice) (string, error) {
	created := inv.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	paid := inv.TotalAmount
	if inv.AmountPaid != nil {
		paid = *inv.AmountPaid
	}
	var balance float64
	if inv.Balance != nil {
		balance = *inv.Balance
	}
	balanceLabel := ""
	if balance > 0 {
		balanceLabel = " (Change)"
	} else if balance < 0 {
		balanceLabel = " (Owing)"
	}

	data := printData{
		Invoice:       inv,
		Company:       companyName,
		PaymentLabel:  paymentMethodLabel(inv.PaymentMethod),
		Date:          created.Format("January 2, 2006"),
		Time:          created.Format("03:04 PM"),
		AmountPaid:    paid,
		Balance:       balance,
		BalanceLabel:  balanceLabel,
		BalanceIsOwed: balance < 0,
	}
	if inv.IsScheduled && inv.DeliveryDate != nil {
		data.DeliveryDate = inv.DeliveryDate.Format("January 2, 2006")
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const printDocument = `<!DOCTYPE html>
<html>
<head>
<title>Invoice #{{.Invoice.InvoiceNumber}}</title>
<link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
<style>
@media print {
  * { -webkit-print-color-adjust: exact !important; print-color-adjust: exact !important; }
  @page { size: A4; margin: 1cm; }
}
body { font-family: Arial, sans-serif; line-height: 1.6; color: #000; background-color: #fff; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; }
th, td { padding: 8px; text-align: left; border-bottom: 1px solid #ddd; }
thead th { background-color: #1f2937; color: #ffffff; text-transform: uppercase; font-size: 0.875rem; }
tfoot { background-color: #f3f4f6; font-weight: 600; }
</style>
</head>
<body>
<div class="mt-8 p-8 border-t-2 border-gray-200 bg-gray-100 rounded-lg shadow-sm">
  <div class="flex justify-between items-center mb-8 pb-5 border-b-2 border-gray-200">
    <h2 class="text-2xl font-bold">{{.Company}}</h2>
    <div class="text-right text-gray-600 text-sm">
      <p>Date: {{.Date}}</p>
      <p>Time: {{.Time}}</p>
    </div>
  </div>

  <div class="flex justify-between mb-8 p-4 bg-white rounded-md">
    <div>
      <h4 class="text-gray-800 font-semibold">Invoice #: {{.Invoice.InvoiceNumber}}</h4>
      <h4 class="text-gray-800 font-semibold">Customer: {{.Invoice.CustomerName}}</h4>
      <h4 class="text-gray-800 font-semibold">Payment Method: {{.PaymentLabel}}</h4>
      {{if .DeliveryDate}}
      <div class="mt-2 pt-2 border-t border-gray-200">
        <h4 class="text-gray-800 font-semibold">Scheduled for Delivery</h4>
        <p class="text-gray-600">Delivery Date: {{.DeliveryDate}}</p>
        {{if .Invoice.DeliveryAddress}}<p class="text-gray-600">Address: {{.Invoice.DeliveryAddress}}</p>{{end}}
        {{if .Invoice.DeliveryNotes}}<p class="text-gray-600">Notes: {{.Invoice.DeliveryNotes}}</p>{{end}}
      </div>
      {{end}}
    </div>
  </div>

  <h3 class="text-center text-2xl font-semibold text-gray-800 mb-5">Order Summary</h3>
  <table class="w-full mt-4 bg-white shadow-md rounded-lg overflow-hidden">
    <thead>
      <tr>
        <th class="p-4 text-left">#</th>
        <th class="p-4 text-left">Product</th>
        <th class="p-4 text-center">Quantity</th>
        <th class="p-4 text-left">Unit Price</th>
        <th class="p-4 text-left">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range $i, $item := .Invoice.Items}}
      <tr>
        <td class="p-4">{{inc $i}}</td>
        <td class="p-4">{{$item.Description}}</td>
        <td class="p-4 text-center">{{$item.Quantity}}</td>
        <td class="p-4">{{money $item.Price}}</td>
        <td class="p-4">{{money (mul $item.Quantity $item.Price)}}</td>
      </tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr>
        <td class="p-4" colspan="4"><strong>Total Amount:</strong></td>
        <td class="p-4">{{money .Invoice.TotalAmount}}</td>
      </tr>
    </tfoot>
  </table>

  <div class="mt-6 p-4 bg-white rounded-lg">
    <h3 class="text-xl font-semibold text-gray-800 mb-3">Payment Details</h3>
    <p class="text-gray-600">Amount Paid: {{money .AmountPaid}}</p>
    <p class="{{if .BalanceIsOwed}}text-red-600{{else}}text-green-600{{end}}">Balance/Change: {{money .Balance}}{{.BalanceLabel}}</p>
  </div>

  <div class="mt-10 pt-5 border-t-2 border-gray-200">
    <div class="text-center mb-8">
      <p class="text-gray-600">____________________</p>
      <p class="text-gray-800 text-sm">Authorized Signature</p>
    </div>
    <div class="p-5 bg-gray-100 rounded-md">
      <p class="font-semibold text-gray-800 mb-2">All Terms &amp; Conditions applied</p>
    </div>
  </div>
</div>
</body>
</html>
`
