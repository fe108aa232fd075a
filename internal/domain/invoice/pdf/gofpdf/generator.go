package gofpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(inv invoice.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.InvoiceNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Invoice")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("No. %s issued %s", inv.InvoiceNumber, inv.IssueDate.Format("02.01.2006")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Due %s", inv.DueDate.Format("02.01.2006")))
	pdf.Ln(6)

	if inv.Description != "" {
		pdf.Cell(0, 6, inv.Description)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, "Type")
	pdf.Cell(40, 7, "Status")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(120, 6, string(inv.InvoiceType))
	pdf.Cell(40, 6, string(inv.Status))
	pdf.Cell(30, 6, inv.Amount.StringFixed(2))
	pdf.Ln(6)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total due: %s", inv.Amount.StringFixed(2)))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Kolmo Construction")
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
