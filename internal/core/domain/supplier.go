package domain

import "regexp"

// Supplier is a payee entity identified by its CNPJ (Brazilian tax ID).
// JSON tags follow the external store's schema.
type Supplier struct {
	ID           string `json:"id"`
	Name         string `json:"nome"` // razão social
	CNPJ         string `json:"cnpj"` // masked form, ##.###.###/####-##
	TradeName    string `json:"fantasia"`
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	District     string `json:"bairro"`
	Municipality string `json:"municipio"`
	UF           string `json:"uf"`
}

var cnpjMaskRE = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// ValidCNPJ reports whether the tax ID is in the full masked form.
func ValidCNPJ(cnpj string) bool {
	return cnpjMaskRE.MatchString(cnpj)
}

// CNPJDigits strips the mask, leaving only the digit string.
func CNPJDigits(cnpj string) string {
	out := make([]byte, 0, len(cnpj))
	for i := 0; i < len(cnpj); i++ {
		if cnpj[i] >= '0' && cnpj[i] <= '9' {
			out = append(out, cnpj[i])
		}
	}
	return string(out)
}

// FormatCNPJ applies the display mask to a partially or fully typed tax ID,
// e.g. "12345678000199" -> "12.345.678/0001-99".
func FormatCNPJ(raw string) string {
	d := CNPJDigits(raw)
	if len(d) > 14 {
		d = d[:14]
	}
	var out []byte
	for i := 0; i < len(d); i++ {
		switch i {
		case 2, 5:
			out = append(out, '.')
		case 8:
			out = append(out, '/')
		case 12:
			out = append(out, '-')
		}
		out = append(out, d[i])
	}
	return string(out)
}

// DeriveSupplierID builds the deterministic supplier identifier from the tax
// ID: the first five and last two digits of the unmasked CNPJ. ok is false
// when there are not enough digits to derive one.
func DeriveSupplierID(cnpj string) (string, bool) {
	d := CNPJDigits(cnpj)
	if len(d) < 7 {
		return "", false
	}
	return d[:5] + d[len(d)-2:], true
}
