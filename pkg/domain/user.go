package domain

// UserID derives the registry user id from a login name by dropping its
// two-letter prefix ("SK12345" -> "12345"). Logins of two characters or
// fewer yield an empty id.
func UserID(username string) string {
	runes := []rune(username)
	if len(runes) <= 2 {
		return ""
	}
	return string(runes[2:])
}
