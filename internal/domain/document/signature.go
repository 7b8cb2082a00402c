package document

import "github.com/linskybing/docflow/internal/domain/user"

// SigningComplete reports whether every signer email has at least one bound
// signature field with a value. With no signers it is never complete.
func SigningComplete(signerEmails []string, data FieldData) bool {
	if len(signerEmails) == 0 {
		return false
	}
	signed := data.SignedEmails()
	for _, e := range signerEmails {
		if _, ok := signed[user.NormalizeEmail(e)]; !ok {
			return false
		}
	}
	return true
}
