package i18n

// catalogs holds the per-language message catalogs. Validation messages take
// the offending field name as their single interpolation argument.
var catalogs = map[string]map[string]string{
	"en": {
		"signup.success":           "Sign up succeeded",
		"signup.username_taken":    "The username is already taken",
		"signin.success":           "Successful sign in",
		"signin.wrong_credentials": "Wrong username or password",
		"apply.success":            "Application submitted",
		"apply.authorized":         "Successful authorization",

		"validation.required":      "%s must not be empty",
		"validation.alpha":         "%s must only consist of letters",
		"validation.alphanum":      "%s must be an alphanumeric string",
		"validation.numeric":       "%s must only consist of numbers",
		"validation.len":           "%s has the wrong length",
		"validation.min":           "%s is too short",
		"validation.max":           "%s is too long",
		"validation.email":         "%s must be a valid email",
		"validation.containsdigit": "%s must contain at least one number",
		"validation.dateonly":      "%s must be an actual date on format YYYY-MM-DD",
		"validation.gte":           "%s must not be negative",
	},
	"sv": {
		"signup.success":           "Registreringen lyckades",
		"signup.username_taken":    "Användarnamnet är upptaget",
		"signin.success":           "Inloggningen lyckades",
		"signin.wrong_credentials": "Fel användarnamn eller lösenord",
		"apply.success":            "Ansökan har skickats in",
		"apply.authorized":         "Behörighetskontrollen lyckades",

		"validation.required":      "%s får inte vara tomt",
		"validation.alpha":         "%s får endast bestå av bokstäver",
		"validation.alphanum":      "%s måste vara en alfanumerisk sträng",
		"validation.numeric":       "%s får endast bestå av siffror",
		"validation.len":           "%s har fel längd",
		"validation.min":           "%s är för kort",
		"validation.max":           "%s är för långt",
		"validation.email":         "%s måste vara en giltig e-postadress",
		"validation.containsdigit": "%s måste innehålla minst en siffra",
		"validation.dateonly":      "%s måste vara ett giltigt datum på formatet YYYY-MM-DD",
		"validation.gte":           "%s får inte vara negativt",
	},
}
