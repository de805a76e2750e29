package main

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// userLanguage detects the language of the user's environment, falling
// back to en-US.
func userLanguage() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		gtrace.CoreTracer.Debugf("cannot detect user locale (%v), using en-US", err)
		return language.AmericanEnglish
	}
	tag, err := language.Parse(userLocale)
	if err != nil {
		gtrace.CoreTracer.Debugf("cannot parse user locale %q, using en-US", userLocale)
		return language.AmericanEnglish
	}
	gtrace.CoreTracer.Debugf("detected user locale %v", tag)
	return tag
}

// printer returns a message printer for the user's locale.
func printer() *message.Printer {
	return message.NewPrinter(userLanguage())
}
