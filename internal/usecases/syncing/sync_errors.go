package syncing

import "errors"

var (
	ErrConflictingModes = errors.New("use --date ou --update-revenues, não os dois")
	ErrInvalidDate      = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrInvalidPeriod    = errors.New("a data inicial é posterior à data final")
	ErrNoClients        = errors.New("nenhum cliente ativo corresponde ao filtro")
)
