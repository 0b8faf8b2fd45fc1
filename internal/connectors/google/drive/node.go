package drive

import (
	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// MimeTypeFolder marks Drive folders.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// nodeFields are the file fields the crawler needs.
const nodeFields = "id,name,mimeType,webViewLink,owners(emailAddress)"

// FileToNode converts a Drive file to a RemoteNode.
// The owner is the first listed owner's e-mail address.
func FileToNode(f *drive.File) domain.RemoteNode {
	node := domain.RemoteNode{
		ID:   f.Id,
		Name: f.Name,
		Link: f.WebViewLink,
		Kind: domain.KindFile,
	}
	if f.MimeType == MimeTypeFolder {
		node.Kind = domain.KindFolder
	}
	if len(f.Owners) > 0 && f.Owners[0] != nil {
		node.Owner = f.Owners[0].EmailAddress
	}
	return node
}
