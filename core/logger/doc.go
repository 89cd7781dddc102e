// Package logger records what happened in a shell session as newline
// delimited JSON events so sessions can be audited and summarized later.
package logger
