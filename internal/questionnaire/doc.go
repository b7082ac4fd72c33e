// Package questionnaire asks the field observer about a specimen through
// numbered Spanish menus and feeds the answers into a session.
//
// Every menu option carries the catalog vocabulary value it stands for, so
// "Zona intermareal" records habitat "intermareal" and "Cartilaginosa"
// records texture "cartilaginoso". Besides the menu number, an observer may
// type the option label or its value; accents and case are ignored.
package questionnaire
