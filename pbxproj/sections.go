package pbxproj

// Section kinds, as they appear in `/* Begin <kind> section */` markers.
const (
	PBXBuildFileSection                    = "PBXBuildFile"
	PBXFrameworksBuildPhaseSection         = "PBXFrameworksBuildPhase"
	PBXNativeTargetSection                 = "PBXNativeTarget"
	PBXProjectSection                      = "PBXProject"
	XCRemoteSwiftPackageReferenceSection   = "XCRemoteSwiftPackageReference"
	XCSwiftPackageProductDependencySection = "XCSwiftPackageProductDependency"
)

// PackageReferenceSignature marks a project whose Swift packages are already
// configured. Its presence turns AddPackages into a no-op.
const PackageReferenceSignature = "/* Begin " + XCRemoteSwiftPackageReferenceSection + " section */"

const (
	fieldFiles                      = "files"
	fieldTargets                    = "targets"
	fieldProductType                = "productType"
	fieldPackageReferences          = "packageReferences"
	fieldPackageProductDependencies = "packageProductDependencies"

	requirementKindUpToNextMajor = "upToNextMajorVersion"
	frameworksGroup              = "Frameworks"
)

func beginSectionMarker(kind string) string {
	return "/* Begin " + kind + " section */"
}

func endSectionMarker(kind string) string {
	return "/* End " + kind + " section */"
}
