package reporting

import "errors"

// Erros específicos para o contexto de relatórios customizados
var (
	ErrReportNotFound      = errors.New("relatório não encontrado")
	ErrReportNotAccessible = errors.New("relatório não acessível pelo solicitante")
	ErrNotOwner            = errors.New("apenas o dono pode alterar o relatório")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
