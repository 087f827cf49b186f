package users

import (
	"encoding/base64"
	"encoding/json"
	"hash/fnv"
	"strings"

	"qualitywash.cl/web/internal/backend"
)

// The fake accepts any non-empty credentials and derives a stable user id
// from the email, so login + profile lookups line up across requests.
// admin@qualitywash.cl receives the ADMIN role.

const fakeAdminEmail = "admin@qualitywash.cl"

func fakeLogin(creds Credentials) (Account, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || strings.TrimSpace(creds.Password) == "" {
		return Account{}, &backend.StatusError{Status: 401, Message: "Credenciales inválidas"}
	}
	role := "CLIENT"
	if email == fakeAdminEmail {
		role = "ADMIN"
	}
	id := fakeIDFor(email)
	return Account{
		ID:       id,
		FullName: fakeNameFor(email),
		Email:    email,
		Role:     role,
		Token:    FakeToken(email, role, id),
		Message:  "Inicio de sesión exitoso",
	}, nil
}

func fakeRegister(u User) (User, error) {
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if email == "" {
		return User{}, &backend.StatusError{Status: 400, Message: "Email requerido"}
	}
	u.ID = fakeIDFor(email)
	u.Email = email
	u.Password = ""
	if u.Kind == "" {
		u.Kind = "CLIENTE"
	}
	return u, nil
}

func fakeByID(id int) (User, error) {
	return User{}, &backend.StatusError{Status: 404, Message: "Usuario no encontrado"}
}

func fakeByEmail(email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, &backend.StatusError{Status: 404, Message: "Usuario no encontrado"}
	}
	first := fakeNameFor(email)
	return User{
		ID:        fakeIDFor(email),
		Kind:      "CLIENTE",
		FirstName: first,
		Email:     email,
	}, nil
}

// FakeToken assembles an unsigned three-part credential whose payload carries
// the claims the role resolver reads. It is only issued by the fake backend.
func FakeToken(email, role string, id int) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, _ := json.Marshal(map[string]any{
		"sub":    email,
		"role":   role,
		"userId": id,
	})
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".fake"
}

func fakeIDFor(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()%90000) + 10000
}

func fakeNameFor(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	if local == "" {
		return "Cliente"
	}
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
