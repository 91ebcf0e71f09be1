/*
Package totext renders recurrence rules as human-readable sentences.

	rule, err := totext.ParseRule("FREQ=WEEKLY;BYDAY=MO,WE;UNTIL=20070101T080000Z")
	if err != nil {
		return err
	}
	fmt.Println(totext.Render(rule))
	// every week on Monday and Wednesday until January 1, 2007

Text is assembled from an i18n.Templates bundle, English unless
WithTemplates says otherwise:

	totext.Render(rule, totext.WithTemplates(i18n.Russian))

Only YEARLY, MONTHLY, WEEKLY, DAILY, HOURLY and MINUTELY rules are
supported; anything else renders as ErrorText. Options a frequency cannot
express are left out and the sentence ends with an "(~ approximate)" marker,
which IsFullyConvertible predicts.
*/
package totext
