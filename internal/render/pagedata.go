package render

import "github.com/khanghh/evote/internal/formguard"

type RegisterPageData struct {
	CSRFToken  string
	Email      string
	Pesel      string
	FormErrors map[formguard.Field]string
	ErrorMsg   string
}

type LoginPageData struct {
	CSRFToken  string
	Email      string
	Registered bool
	ErrorMsg   string
}

type HomePageData struct {
	CSRFToken string
	Email     string
	Pesel     string
}
