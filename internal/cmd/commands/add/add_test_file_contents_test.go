package add

const (
	projectContent = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
/* End PBXBuildFile section */

/* Begin PBXFrameworksBuildPhase section */
		0A1B2C3D0A1B2C3D00000003 /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXNativeTarget section */
		0A1B2C3D0A1B2C3D00000002 /* App */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				0A1B2C3D0A1B2C3D00000003 /* Frameworks */,
			);
			dependencies = (
			);
			name = App;
			productName = App;
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		0A1B2C3D0A1B2C3D00000001 /* Project object */ = {
			isa = PBXProject;
			compatibilityVersion = "Xcode 14.0";
			projectDirPath = "";
			projectRoot = "";
			targets = (
				0A1B2C3D0A1B2C3D00000002 /* App */,
			);
		};
/* End PBXProject section */
	};
	rootObject = 0A1B2C3D0A1B2C3D00000001 /* Project object */;
}
`
)
