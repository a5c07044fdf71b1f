package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/extdoc/js"
)

func newDocCmd() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "doc [name]",
		Short: "Show documentation for a class or member",
		Long: `Show documentation for a class or member.

The name can be:
  - A class name (e.g., Ext.Panel)
  - A class name with a member (e.g., Ext.Panel.show)

With no arguments, lists all documented classes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, _, err := aggregateProject(rootDir)
			if err != nil {
				return err
			}
			js.InjectEventOptions(classes)

			if len(args) == 0 {
				return listClasses(classes)
			}
			return runDoc(classes, args[0])
		},
	}

	cmd.Flags().StringVarP(&rootDir, "project", "p", ".", "project root directory")

	return cmd
}

func listClasses(classes []*js.Class) error {
	if len(classes) == 0 {
		return fmt.Errorf("no documented classes found")
	}
	fmt.Println("Classes:")
	for _, cls := range classes {
		fmt.Printf("    %s\n", cls.Name)
	}
	return nil
}

func runDoc(classes []*js.Class, name string) error {
	if cls := findClass(classes, name); cls != nil {
		printClassDoc(cls)
		return nil
	}

	// Not a class; split off a trailing member name.
	dot := strings.LastIndexByte(name, '.')
	if dot > 0 {
		if cls := findClass(classes, name[:dot]); cls != nil {
			return printMemberDoc(cls, name[dot+1:])
		}
	}

	return fmt.Errorf("class %s not found", name)
}

func findClass(classes []*js.Class, name string) *js.Class {
	for _, cls := range classes {
		if cls.Name == name {
			return cls
		}
		for _, alt := range cls.AlternateClassNames {
			if alt == name {
				return cls
			}
		}
	}
	return nil
}

func printClassDoc(cls *js.Class) {
	if cls.Doc != "" {
		fmt.Println(cls.Doc)
		fmt.Println()
	}

	printClassSignature(cls)

	if xtypes := cls.Xtypes["widget"]; len(xtypes) > 0 {
		fmt.Printf("xtype: %s\n", strings.Join(xtypes, ", "))
	}
	if cls.Filename != "" {
		fmt.Printf("defined in %s:%d\n", cls.Filename, cls.Line)
	}

	printMemberSection("Config options", cls.Members[js.TagCfg])
	printMemberSection("Properties", cls.Members[js.TagProperty])
	printMemberSection("Methods", cls.Members[js.TagMethod])
	printMemberSection("Events", cls.Members[js.TagEvent])

	var statics []*js.Member
	for _, tag := range js.MemberTags {
		statics = append(statics, cls.Statics[tag]...)
	}
	printMemberSection("Static members", statics)
}

func printClassSignature(cls *js.Class) {
	var sb strings.Builder

	if cls.Singleton {
		sb.WriteString("singleton ")
	}
	sb.WriteString("class ")
	sb.WriteString(cls.Name)

	if cls.Extends != "" {
		sb.WriteString(" extends ")
		sb.WriteString(cls.Extends)
	}
	if len(cls.Mixins) > 0 {
		sb.WriteString(" mixins ")
		sb.WriteString(strings.Join(cls.Mixins, ", "))
	}

	fmt.Println(sb.String())
}

func printMemberSection(title string, members []*js.Member) {
	if len(members) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, m := range members {
		fmt.Printf("    %s\n", formatMemberSignature(m))
	}
}

func printMemberDoc(cls *js.Class, name string) error {
	m := cls.Member(name)
	if m == nil {
		m = findStatic(cls, name)
	}
	if m == nil {
		return fmt.Errorf("member %s not found in %s", name, cls.Name)
	}

	if m.Doc != "" {
		fmt.Println(m.Doc)
		fmt.Println()
	}

	fmt.Printf("%s %s\n", m.Tag, formatMemberSignature(m))

	for _, p := range m.Params {
		fmt.Printf("    %s\n", formatParam(p))
		if p.Doc != "" {
			fmt.Printf("        %s\n", strings.ReplaceAll(p.Doc, "\n", "\n        "))
		}
	}

	return nil
}

func findStatic(cls *js.Class, name string) *js.Member {
	for _, tag := range js.MemberTags {
		for _, m := range cls.Statics[tag] {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

func formatMemberSignature(m *js.Member) string {
	var sb strings.Builder

	if m.Static {
		sb.WriteString("static ")
	}
	sb.WriteString(m.Name)

	if m.Tag == js.TagMethod || m.Tag == js.TagEvent {
		params := make([]string, 0, len(m.Params))
		for _, p := range m.Params {
			params = append(params, p.Name)
		}
		sb.WriteString("( " + strings.Join(params, ", ") + " )")
	} else {
		sb.WriteString(" : " + m.Type)
		if m.Default != "" {
			sb.WriteString(" = " + m.Default)
		}
		if m.Required {
			sb.WriteString(" (required)")
		}
	}

	return sb.String()
}

func formatParam(p *js.Member) string {
	s := p.Name + " : " + p.Type
	if p.Optional {
		s += " (optional)"
	}
	if p.Default != "" {
		s += " = " + p.Default
	}
	return s
}
