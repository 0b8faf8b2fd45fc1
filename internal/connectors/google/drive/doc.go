// Package drive lists the Google Drive folder tree for the crawler.
package drive
