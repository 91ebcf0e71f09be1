/*
Package i18n holds the locale template bundles used to render recurrence
rules as text.

A bundle (Templates) has one field per semantic key. Fields that depend on a
number, such as the interval of "every 2 weeks" or the ordinal of "the 3rd
Friday", are Buckets: templates keyed by the exact number with an Else
fallback.

	tpl := i18n.English.Weekly.Select("2") // "every %{interval} weeks"

Bundles can be loaded from YAML and collected in a Registry:

	reg := i18n.DefaultRegistry()
	if err := i18n.LoadFS(reg, os.DirFS("locales")); err != nil {
		log.Fatal(err)
	}
	ru, err := reg.Lookup("ru-RU")
*/
package i18n
