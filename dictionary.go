package main

import (
	"fmt"
	"sort"
)

// action is anything a word can do when it runs.
type action interface {
	exec(it *Interp) error
}

// primitive is a built-in action, implemented by an Interp method.
type primitive struct {
	name string
	fn   func(it *Interp) error
}

// composite is the body of a defined word: the actions its definition
// resolved to, captured when it was compiled and run in order.
type composite struct {
	name string
	body []action
}

// literal pushes a number; the resolver makes one for every numeric token,
// and they never enter the dictionary.
type literal struct {
	value Value
}

func (prim *primitive) exec(it *Interp) error {
	if err := prim.fn(it); isWordFault(err) {
		return wordError{prim.name, err}
	} else if err != nil {
		return err
	}
	return nil
}

func (def *composite) exec(it *Interp) error {
	for _, act := range def.body {
		if err := act.exec(it); err != nil {
			return err
		}
	}
	return nil
}

func (lit *literal) exec(it *Interp) error {
	if err := it.push(lit.value); err != nil {
		return wordError{lit.value.String(), err}
	}
	return nil
}

// word is a dictionary entry.
type word struct {
	name      string
	action    action
	immediate bool
}

func (w word) String() string {
	if w.immediate {
		return fmt.Sprintf("%v immediate", w.name)
	}
	return w.name
}

// dictionary maps case-sensitive names to words. Binding a name again
// replaces its entry; composites compiled against the old entry keep the
// action that they captured.
type dictionary struct {
	words map[string]word
}

func (dict *dictionary) bind(w word) {
	if dict.words == nil {
		dict.words = make(map[string]word)
	}
	dict.words[w.name] = w
}

func (dict *dictionary) insert(name string, act action) {
	dict.bind(word{name: name, action: act})
}

func (dict *dictionary) insertImmediate(name string, act action) {
	dict.bind(word{name: name, action: act, immediate: true})
}

// alias binds newName to a copy of oldName's current entry.
func (dict *dictionary) alias(newName, oldName string) error {
	w, defined := dict.lookup(oldName)
	if !defined {
		return aliasError(oldName)
	}
	w.name = newName
	dict.bind(w)
	return nil
}

func (dict *dictionary) lookup(name string) (word, bool) {
	w, defined := dict.words[name]
	return w, defined
}

func (dict *dictionary) names() []string {
	names := make([]string, 0, len(dict.words))
	for name := range dict.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
