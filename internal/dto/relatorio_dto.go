package dto

import "github.com/shopspring/decimal"

// TopProdutoResponse aggregates line items by product. Revenue uses the
// snapshot price on each item, not the live product price.
type TopProdutoResponse struct {
	ProdutoID       string          `json:"productId"`
	Nome            string          `json:"name"`
	Categoria       string          `json:"category"`
	QuantidadeTotal int             `json:"totalQuantity"`
	ReceitaTotal    decimal.Decimal `json:"totalRevenue"`
}

// VendasPorPeriodoResponse is one bucket of the period aggregation.
type VendasPorPeriodoResponse struct {
	Periodo      string          `json:"period"`
	TotalVendas  decimal.Decimal `json:"totalSales"`
	TotalPedidos int             `json:"totalOrders"`
}

type MetodoPagamentoResponse struct {
	Metodo     string          `json:"method"`
	Quantidade int             `json:"count"`
	ValorTotal decimal.Decimal `json:"totalValue"`
}

type ResumoDashboardResponse struct {
	ReceitaTotal decimal.Decimal `json:"totalRevenue"`
	ReceitaHoje  decimal.Decimal `json:"todayRevenue"`
	ReceitaMes   decimal.Decimal `json:"monthRevenue"`
	PedidosTotal int64           `json:"totalOrders"`
	PedidosHoje  int64           `json:"todayOrders"`
	PedidosMes   int64           `json:"monthOrders"`
}
