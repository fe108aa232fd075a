package pdf

import "github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/domain/invoice"

type Generator interface {
	Generate(inv invoice.Invoice) ([]byte, error)
}
