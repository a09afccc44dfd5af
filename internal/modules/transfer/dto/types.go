package dto

type TransferInput struct {
	Type string
	Path string
}

type TransferOutput struct {
	Type  string
	Path  string
	Bytes int
}
