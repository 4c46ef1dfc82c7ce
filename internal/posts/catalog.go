package posts

// Catalog is the compiled-in metadata of every published post.
var Catalog = []Post{
	{
		Slug:    "2019-09-10-r2con2019",
		Title:   "R2Con CTF - Land of Ecodelia",
		Tags:    []string{"Reverse-Engineering", "CTF"},
		Spoiler: "A walk through on reversing a CTF challenge from R2con 2019. This breaks down the process of tackling an unknown binary written in Golang and show cases some of the capabilities of the Radare2 framework.",
	},
	{
		Slug:    "2019-11-30-new_android_biometric_apis",
		Title:   "Android Biometric APIs - Using Crypto Objects in Kotlin",
		Tags:    []string{"Mobile", "Android", "Biometrics"},
		Spoiler: "A basic overview of the new biometric APIs introduced in Android 10. This showcases a basic example using Crypto Objects, talk about the new biometric architecture, and some of the inherent risks introduced as a result.",
	},
	{
		Slug:    "2020-04-02-aws_certified_solutions_architect",
		Title:   "Zero to AWS Associate Solutions Architect",
		Tags:    []string{"Amazon Web Services (AWS)"},
		Spoiler: "My journey of knowing almost nothing about AWS to achieving the SAA-C02 Associate Solutions Architect certification in three weeks. This post highlights why I decided to pursue this certification, what resources I used, and what I should have done differently.",
	},
	{
		Slug:    "2020-05-15-debugging_and_instrumenting_swift_apps_ios_13",
		Title:   "Debugging & Instrumenting Swift Applications on iOS 13",
		Tags:    []string{"Mobile", "iOS", "Frida"},
		Spoiler: "A high level overview of debugging and dynamically instrumenting Swift mobile applications on iOS 13. This post goes into detail on some of the nuances of testing on iOS 13, some tips on working with Swift apps with the dynamic instrumentation framework Frida, and some general information for getting set up.",
	},
	{
		Slug:    "2020-08-09-custom_stealthy_android_root",
		Title:   "Creating a Custom Root by Patching SuperSU",
		Tags:    []string{"Mobile", "Android"},
		Spoiler: "An introduction into how existing popular rooting frameworks can be customised to provide a more stealthy alternative. This post highlights the importance of setting up a streamlined Android environment for security testing. In addition, I walk through an open source tool I wrote for modifying one of these frameworks that makes it virtually undetectable using conventional methods.",
	},
	{
		Slug:    "2020-09-05-r2con2020",
		Title:   "R2Con2020 CTF - Cyberlock",
		Tags:    []string{"Reverse-Engineering", "CTF"},
		Spoiler: "A walk through of solving the Cyberlock CTF challenge from r2con2020 using the Radare2 framework. This post breaks down the process of reversing an unknown x86 binary and showcases some of the capabilities of the framework.",
	},
	{
		Slug:    "2021-05-10-handling_relative_urls",
		Title:   "Handling Relative URLs for Redirect / Forwards",
		Tags:    []string{"Web"},
		Spoiler: "Remediating unvalidated forwards and redirects is almost always achieved by using an allow list of complete URLs. However, what do you do if the complete URL cannot be determined ahead of time? Unfortunately the default solution to the problem does not apply to every corner case. This post digs into validating URLs for redirects / forwards using a relative path.",
	},
	{
		Slug:    "2021-09-25-object_oriented_discord_bot",
		Title:   "Object Oriented Discord Bot in Python",
		Tags:    []string{"Development"},
		Spoiler: "Discord bots are a great way to enhance the functionality of a server and enrich user experience. There are many tutorials out there that provide a quick and dirty approach to creating a discord bot but very few, if any, discuss scalable alternatives. This post digs into creating and structuring a discord bot for larger projects using object orientated programming.",
	},
	{
		Slug:    "2021-12-11-github-actions-aws-credentials",
		Title:   "Ephemeral AWS Credentials in Github Actions",
		Tags:    []string{"Amazon Web Services (AWS)"},
		Spoiler: "Github provides a built-in mechanism to automate development workflows through Github Actions. Integrating workflows with AWS services is a common use case, however, many tutorials suggest the path of least resistance - introducing sharp edges. This post presents a CDK application that is deployed to through Github Actions using ephemeral AWS credentials.",
	},
	{
		Slug:    "2022-05-29-json-fuzzing-algorithm",
		Title:   "Automating Templated JSON Fuzzing / Unit Testing",
		Tags:    []string{"Development", "Web", "Fuzzing"},
		Spoiler: "JSON (JavaScript Object Notation) is a widely used lightweight data-interchange format. It is commonly used to share data between decoupled components / systems, store data persistently, and import / export data in / out of sytems. Manually testing JSON structures can be combersome and prone to human error, especially in complex nested structures. This post presents a JSON parsing algorithm that generates permutations of JSON structures automatically that can be used to automate unit testing / fuzzing activities.",
	},
}

// Default builds the index of Catalog.
func Default() *Index {
	x, err := NewIndex(Catalog)
	if err != nil {
		panic("posts: bad catalog: " + err.Error())
	}
	return x
}
