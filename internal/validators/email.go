package validators

import (
	"net"
	"strings"
)

// EmailDomainExists verifica se o domínio do e-mail resolve em DNS
// (MX ou, na falta, A/AAAA). Não garante caixa postal viva — só barra
// domínio digitado errado no cadastro.
func EmailDomainExists(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
