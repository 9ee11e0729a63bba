// Package demo contains the interactive demos behind 'statusbox demo': a
// home menu, the status box demo and the two paged list demos, plus the mock
// data source and paging controller they run on.
package demo
