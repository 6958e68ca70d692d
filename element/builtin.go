// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

// Descriptors returns fresh copies of all built-in element descriptors.
func Descriptors() []Descriptor {
	res := []Descriptor{
		appDescriptor(),
		themeDescriptor(),
		deploymentDescriptor(),
		fileDescriptor(),
		pageDescriptor(),
	}

	res = append(res, layoutDescriptors()...)
	res = append(res, widgetDescriptors()...)
	res = append(res, courseDescriptors()...)

	return res
}

// Builtin returns a new registry containing all built-in elements.
// Additional element types can be registered before the first parse.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, d := range Descriptors() {
		reg.MustRegister(d)
	}

	return reg
}
