package printview

import (
	"fmt"

	"temiperi-stocks-backend/internal/model"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderPDF builds the A4 invoice PDF used by the WhatsApp attachment flow.
func RenderPDF(inv *model.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, companyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(7,
		text.NewCol(6, fmt.Sprintf("Invoice #: %s", inv.InvoiceNumber), props.Text{Style: fontstyle.Bold}),
		text.NewCol(6, fmt.Sprintf("Date: %s", inv.CreatedAt.Format("January 2, 2006")), props.Text{Align: align.Right}),
	)
	m.AddRow(7,
		text.NewCol(6, fmt.Sprintf("Customer: %s", inv.CustomerName)),
		text.NewCol(6, fmt.Sprintf("Payment: %s", paymentMethodLabel(inv.PaymentMethod)), props.Text{Align: align.Right}),
	)
	if inv.IsScheduled && inv.DeliveryDate != nil {
		m.AddRow(7,
			text.NewCol(12, fmt.Sprintf("Scheduled delivery: %s  %s",
				inv.DeliveryDate.Format("January 2, 2006"), inv.DeliveryAddress)),
		)
	}

	m.AddRow(4, col.New(12))
	m.AddRow(8,
		text.NewCol(1, "#", props.Text{Style: fontstyle.Bold}),
		text.NewCol(5, "Product", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Unit Price", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	for i, item := range inv.Items {
		m.AddRows(row.New(7).Add(
			text.NewCol(1, fmt.Sprintf("%d", i+1)),
			text.NewCol(5, item.Description),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Align: align.Center}),
			text.NewCol(2, fmt.Sprintf("GHS %.2f", item.Price), props.Text{Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("GHS %.2f", float64(item.Quantity)*item.Price), props.Text{Align: align.Right}),
		))
	}

	m.AddRow(10,
		text.NewCol(10, "Total Amount:", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, fmt.Sprintf("GHS %.2f", inv.TotalAmount), props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	if inv.AmountPaid != nil {
		m.AddRow(7,
			text.NewCol(10, "Amount Paid:", props.Text{Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("GHS %.2f", *inv.AmountPaid), props.Text{Align: align.Right}),
		)
	}
	if inv.Balance != nil {
		m.AddRow(7,
			text.NewCol(10, "Balance/Change:", props.Text{Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("GHS %.2f", *inv.Balance), props.Text{Align: align.Right}),
		)
	}

	m.AddRow(12, col.New(12))
	m.AddRow(7,
		text.NewCol(12, "All Terms & Conditions applied", props.Text{Align: align.Center}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
