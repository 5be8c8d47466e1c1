package configuring

import "errors"

var (
	ErrConfigSheetMissing = errors.New("ID da planilha de configuração não informado")
	ErrSheetURLNotFound   = errors.New("URL do Google Sheet não encontrada")
	ErrInvalidSheetURL    = errors.New("não foi possível extrair o ID da planilha")
	ErrInvalidRow         = errors.New("linha de configuração inválida")
)
